package skema

// IssueAt creates an Issue at the given path, relative to the scope it is
// added to, with provided code, message and params map.
func IssueAt(p Path, code, msg string, params map[string]any) Issue {
	return Issue{Path: p, Code: code, Message: msg, Params: params}
}
