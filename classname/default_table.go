package classname

func sides(id, prefix string) []Group {
	return []Group{
		{ID: id, Prefixes: []string{prefix + "-"}, Conflicts: []string{
			id + "-x", id + "-y", id + "-s", id + "-e", id + "-t", id + "-r", id + "-b", id + "-l",
		}},
		{ID: id + "-x", Prefixes: []string{prefix + "x-"}, Conflicts: []string{id + "-r", id + "-l"}},
		{ID: id + "-y", Prefixes: []string{prefix + "y-"}, Conflicts: []string{id + "-t", id + "-b"}},
		{ID: id + "-s", Prefixes: []string{prefix + "s-"}},
		{ID: id + "-e", Prefixes: []string{prefix + "e-"}},
		{ID: id + "-t", Prefixes: []string{prefix + "t-"}},
		{ID: id + "-r", Prefixes: []string{prefix + "r-"}},
		{ID: id + "-b", Prefixes: []string{prefix + "b-"}},
		{ID: id + "-l", Prefixes: []string{prefix + "l-"}},
	}
}

// DefaultGroups returns a small layout-oriented table covering spacing,
// sizing, display, position and a few typography groups. It is meant as a
// starting point for projects that do not use the full Tailwind rules.
func DefaultGroups() []Group {
	groups := []Group{
		{ID: "display", Classes: []string{
			"block", "inline-block", "inline", "flex", "inline-flex", "grid", "inline-grid",
			"table", "contents", "flow-root", "hidden",
		}},
		{ID: "position", Classes: []string{"static", "fixed", "absolute", "relative", "sticky"}},
		{ID: "visibility", Classes: []string{"visible", "invisible", "collapse"}},
		{ID: "width", Prefixes: []string{"w-"}, Conflicts: []string{"size"}},
		{ID: "height", Prefixes: []string{"h-"}, Conflicts: []string{"size"}},
		{ID: "size", Prefixes: []string{"size-"}, Conflicts: []string{"width", "height"}},
		{ID: "min-width", Prefixes: []string{"min-w-"}},
		{ID: "max-width", Prefixes: []string{"max-w-"}},
		{ID: "gap", Prefixes: []string{"gap-"}, Conflicts: []string{"gap-x", "gap-y"}},
		{ID: "gap-x", Prefixes: []string{"gap-x-"}},
		{ID: "gap-y", Prefixes: []string{"gap-y-"}},
		{ID: "z-index", Prefixes: []string{"z-"}},
		{ID: "opacity", Prefixes: []string{"opacity-"}},
		{ID: "rounded", Classes: []string{"rounded"}, Prefixes: []string{"rounded-"}},
		{ID: "font-weight", Classes: []string{
			"font-thin", "font-extralight", "font-light", "font-normal", "font-medium",
			"font-semibold", "font-bold", "font-extrabold", "font-black",
		}},
		{ID: "text-align", Classes: []string{"text-left", "text-center", "text-right", "text-justify", "text-start", "text-end"}},
		{ID: "font-size", Classes: []string{
			"text-xs", "text-sm", "text-base", "text-lg", "text-xl",
			"text-2xl", "text-3xl", "text-4xl", "text-5xl", "text-6xl",
		}},
	}
	groups = append(groups, sides("padding", "p")...)
	groups = append(groups, sides("margin", "m")...)
	return groups
}

// DefaultGroupTable returns a table built from [DefaultGroups].
func DefaultGroupTable() *GroupTable {
	t, err := NewGroupTable(DefaultGroups()...)
	if err != nil {
		panic(err)
	}
	return t
}
