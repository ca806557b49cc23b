// Package parser tokenizes shell command lines.
package parser

import "strings"

// Parse splits line into an argument vector and reports whether the
// command should run in the background. Arguments are separated by
// spaces; characters enclosed in single quotes form a single argument. A
// trailing argument beginning with '&' requests background execution and
// is not included in argv. A blank line yields an empty argv.
func Parse(line string) (argv []string, bg bool) {
	rest := strings.TrimSpace(line)

	for rest != "" {
		var arg string

		if rest[0] == '\'' {
			rest = rest[1:]
			if i := strings.IndexByte(rest, '\''); i >= 0 {
				arg, rest = rest[:i], rest[i+1:]
			} else {
				arg, rest = rest, ""
			}
		} else if i := strings.IndexByte(rest, ' '); i >= 0 {
			arg, rest = rest[:i], rest[i+1:]
		} else {
			arg, rest = rest, ""
		}

		if arg != "" {
			argv = append(argv, arg)
		}

		rest = strings.TrimLeft(rest, " ")
	}

	if len(argv) == 0 {
		return nil, false
	}

	if argv[len(argv)-1][0] == '&' {
		return argv[:len(argv)-1], true
	}

	return argv, false
}
