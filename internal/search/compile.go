package search

import (
	"fmt"
	"strings"
)

// Compile renders a predicate tree to one parameterized SQL condition.
// The result is meant for gorm's Where; an empty condition means the
// tree matches everything.
func Compile(p Predicate) (string, []interface{}) {
	switch node := p.(type) {
	case Compare:
		return fmt.Sprintf("%s %s ?", node.Column, node.Op), []interface{}{node.Value}

	case Contains:
		return fmt.Sprintf("%s ILIKE ?", node.Column), []interface{}{"%" + node.Substr + "%"}

	case Null:
		return fmt.Sprintf("%s IS NULL", node.Column), nil

	case And:
		return compileGroup(node.Children, " AND ")

	case Or:
		return compileGroup(node.Children, " OR ")

	default:
		return "", nil
	}
}

func compileGroup(children []Predicate, sep string) (string, []interface{}) {
	var (
		parts []string
		args  []interface{}
	)
	for _, child := range children {
		sql, childArgs := Compile(child)
		if sql == "" {
			continue
		}
		parts = append(parts, sql)
		args = append(args, childArgs...)
	}
	switch len(parts) {
	case 0:
		return "", nil
	case 1:
		return parts[0], args
	default:
		return "(" + strings.Join(parts, sep) + ")", args
	}
}
