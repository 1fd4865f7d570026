package engine

import "strings"

// Split breaks query text into individual statements on top-level
// semicolons. Quoted strings, quoted identifiers and comments are kept
// intact. Statements that contain only whitespace or comments are dropped.
// A CREATE TRIGGER body is kept whole up to its closing END.
func Split(text string) []string {
	var (
		out     []string
		start   int
		hasCode bool
	)

	flush := func(end int) {
		stmt := strings.TrimSpace(text[start:end])
		if hasCode && stmt != "" {
			out = append(out, stmt)
		}
		start = end + 1
		hasCode = false
	}

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '\'' || c == '"' || c == '`':
			i = skipQuoted(text, i, c)
			hasCode = true
		case c == '[':
			i = skipQuoted(text, i, ']')
			hasCode = true
		case c == '-' && i+1 < len(text) && text[i+1] == '-':
			for i < len(text) && text[i] != '\n' {
				i++
			}
		case c == '/' && i+1 < len(text) && text[i+1] == '*':
			end := strings.Index(text[i+2:], "*/")
			if end < 0 {
				i = len(text)
			} else {
				i += end + 3
			}
		case c == ';':
			if inTriggerBody(text[start:i]) {
				continue
			}
			flush(i)
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
		default:
			hasCode = true
		}
	}
	if start < len(text) {
		flush(len(text))
	}
	return out
}

// skipQuoted returns the index of the closing quote for the literal opened
// at i. A doubled closing character is an escaped quote.
func skipQuoted(text string, i int, closing byte) int {
	for j := i + 1; j < len(text); j++ {
		if text[j] != closing {
			continue
		}
		if closing != ']' && j+1 < len(text) && text[j+1] == closing {
			j++
			continue
		}
		return j
	}
	return len(text) - 1
}

// inTriggerBody reports whether a semicolon after stmt still belongs to an
// unfinished CREATE TRIGGER ... BEGIN ... END block.
func inTriggerBody(stmt string) bool {
	fields := strings.Fields(strings.ToUpper(stmt))
	if len(fields) < 2 || fields[0] != "CREATE" {
		return false
	}
	isTrigger := false
	for _, f := range fields[1:min(len(fields), 4)] {
		if f == "TRIGGER" {
			isTrigger = true
			break
		}
	}
	if !isTrigger {
		return false
	}
	return fields[len(fields)-1] != "END"
}
