package main

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// listFlag collects every value given to a repeatable flag.
type listFlag []string

func (l *listFlag) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, " ")
}

func (l *listFlag) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// negativeNumber matches values such as -1 or -.5 that are not flags.
var negativeNumber = regexp.MustCompile(`^-\d+$|^-\d*\.\d+$`)

func isFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && !negativeNumber.MatchString(arg)
}

// ExpandListArgs rewrites `-name v1 v2` into `-name v1 -name v2` for the named list flags,
// so the flag package sees one value per occurrence.
func ExpandListArgs(args []string, lists ...string) []string {
	var (
		expanded = make([]string, 0, len(args))
		list     string
		values   int
	)
	for i, arg := range args {
		if arg == "--" {
			return append(expanded, args[i:]...)
		}
		if isFlag(arg) {
			var name, _, hasValue = strings.Cut(strings.TrimLeft(arg, "-"), "=")
			list, values = "", 0
			if !hasValue && lo.Contains(lists, name) {
				list = arg
			}
			expanded = append(expanded, arg)
			continue
		}
		if list != "" {
			if values > 0 {
				expanded = append(expanded, list)
			}
			values++
		}
		expanded = append(expanded, arg)
	}
	return expanded
}
