package search

import (
	"time"
)

// Build maps a Filters value to the predicate tree for one search.
//
// The base clauses always restrict to live listings: status must be active
// and expires_at, when set, must still be in the future. Free-text query
// and location both feed a single growing OR-group of substring clauses;
// a row qualifies when it satisfies every hard filter and, if the group is
// non-empty, at least one clause of the group. Hard filters are appended,
// never overwritten, so they stack.
func Build(f Filters, now time.Time) Predicate {
	children := []Predicate{
		Compare{Column: "jobs.status", Op: OpEq, Value: "active"},
		Or{Children: []Predicate{
			Null{Column: "jobs.expires_at"},
			Compare{Column: "jobs.expires_at", Op: OpGt, Value: now},
		}},
	}

	var soft []Predicate
	if f.Query != "" {
		soft = append(soft,
			Contains{Column: "jobs.title", Substr: f.Query},
			Contains{Column: "jobs.description", Substr: f.Query},
			Contains{Column: "companies.name", Substr: f.Query},
		)
	}
	if f.Location != "" {
		// Extends the same OR-group instead of opening a second one
		soft = append(soft,
			Contains{Column: "jobs.city", Substr: f.Location},
			Contains{Column: "jobs.province", Substr: f.Location},
			Contains{Column: "jobs.country", Substr: f.Location},
		)
	}
	if len(soft) > 0 {
		children = append(children, Or{Children: soft})
	}

	if f.PositionType != "" {
		children = append(children, Compare{Column: "jobs.position_type", Op: OpEq, Value: f.PositionType})
	}
	if f.RemotePolicy != "" {
		children = append(children, Compare{Column: "jobs.remote_policy", Op: OpEq, Value: f.RemotePolicy})
	}
	if f.ExperienceLevel != "" {
		children = append(children, Compare{Column: "jobs.experience_level", Op: OpEq, Value: f.ExperienceLevel})
	}
	if f.CategoryID != nil {
		children = append(children, Compare{Column: "jobs.category_id", Op: OpEq, Value: *f.CategoryID})
	}
	if f.SalaryMin != nil {
		children = append(children, Compare{Column: "jobs.salary_min", Op: OpGte, Value: *f.SalaryMin})
	}
	if f.SalaryMax != nil {
		children = append(children, Compare{Column: "jobs.salary_max", Op: OpLte, Value: *f.SalaryMax})
	}

	return And{Children: children}
}

// NeedsCompanyJoin reports whether the predicate references the companies
// table, in which case execution must join it.
func NeedsCompanyJoin(f Filters) bool {
	return f.Query != ""
}

// OrderBy is the documented sort policy: featured first, urgent second,
// most recently posted third, with id as the stable tie-break.
const OrderBy = "jobs.is_featured DESC, jobs.is_urgent DESC, jobs.posted_at DESC, jobs.id ASC"
