package schema

// CoreToolTagTable represents the 'core.tooltag' table
type CoreToolTagTable struct {
	Table    string
	ID       string
	ToolID   string
	TagID    string
	ToolName string
	TagName  string
}

// CoreToolTag is the schema definition for core.tooltag
var CoreToolTag = CoreToolTagTable{
	Table:    "core.tooltag",
	ID:       "id",
	ToolID:   "toolid",
	TagID:    "tagid",
	ToolName: "toolname",
	TagName:  "tagname",
}

func (t CoreToolTagTable) Columns() []string {
	return []string{t.ID, t.ToolID, t.TagID, t.ToolName, t.TagName}
}
