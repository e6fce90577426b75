package schema

// CoreToolTable represents the 'core.tool' table
type CoreToolTable struct {
	Table     string
	ID        string
	Name      string
	CreatedAt string
}

// CoreTool is the schema definition for core.tool
var CoreTool = CoreToolTable{
	Table:     "core.tool",
	ID:        "id",
	Name:      "name",
	CreatedAt: "createdat",
}

func (t CoreToolTable) Columns() []string {
	return []string{t.ID, t.Name, t.CreatedAt}
}
