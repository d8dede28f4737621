package diagram

import (
	"fmt"
	"strings"

	"github.com/Shivagad/SDLC-Automation/internal/core/model"
)

// sanitizeLabel strips parentheses and underscores and keeps only
// alphanumeric-or-space characters, collapsing nothing else.
func sanitizeLabel(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r == ' ' ||
			(r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// sanitizeName keeps alphanumeric characters only, for identifiers in
// class diagrams.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ArchitectureDiagram renders a top-down Mermaid graph of the
// architecture's components. With more than 3 components the first four
// are treated as a front tier fanning into the first backend component,
// and the remaining backend components form a loosely-dashed chain;
// smaller architectures render as a simple linear chain. The first
// declared database, if any, becomes an extra node fed by the second
// tier. Output is deterministic for identical input.
func ArchitectureDiagram(arch model.Architecture) string {
	var b strings.Builder
	b.WriteString("graph TD\n")

	n := len(arch.Components)
	for i, comp := range arch.Components {
		fmt.Fprintf(&b, "    C%d[\"%s\"]\n", i, sanitizeLabel(comp.Name))
	}

	if n > 3 {
		front := 4
		if n < 4 {
			front = n
		}
		hub := 4
		if n-1 < hub {
			hub = n - 1
		}
		for i := 0; i < front; i++ {
			if i == hub {
				continue
			}
			fmt.Fprintf(&b, "    C%d --> C%d\n", i, hub)
		}
		for i := 4; i <= n-2; i++ {
			fmt.Fprintf(&b, "    C%d -.-> C%d\n", i, i+1)
		}
	} else {
		for i := 0; i+1 < n; i++ {
			fmt.Fprintf(&b, "    C%d --> C%d\n", i, i+1)
		}
	}

	hasDB := len(arch.DataStorage.Databases) > 0 && n > 0
	if hasDB {
		fmt.Fprintf(&b, "    DB[(\"%s\")]\n", sanitizeLabel(arch.DataStorage.Databases[0]))
		if n >= 5 {
			last := 7
			if n-1 < last {
				last = n - 1
			}
			for i := 4; i <= last; i++ {
				fmt.Fprintf(&b, "    C%d --> DB\n", i)
			}
		} else {
			fmt.Fprintf(&b, "    C%d --> DB\n", n-1)
		}
	}

	// Cosmetic tiering only; must not affect topology.
	b.WriteString("    classDef frontend fill:#42a5f5,stroke:#1e88e5,color:#fff\n")
	b.WriteString("    classDef backend fill:#66bb6a,stroke:#43a047,color:#fff\n")
	b.WriteString("    classDef database fill:#ffa726,stroke:#fb8c00,color:#fff\n")

	frontEnd := 4
	if n < frontEnd {
		frontEnd = n
	}
	if frontEnd > 0 {
		b.WriteString("    class " + nodeList(0, frontEnd) + " frontend\n")
	}
	if n > 4 {
		b.WriteString("    class " + nodeList(4, n) + " backend\n")
	}
	if hasDB {
		b.WriteString("    class DB database\n")
	}

	return b.String()
}

func nodeList(from, to int) string {
	ids := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		ids = append(ids, fmt.Sprintf("C%d", i))
	}
	return strings.Join(ids, ",")
}

func visibilityMarker(visibility string) string {
	if visibility == "public" {
		return "+"
	}
	return "-"
}

// UMLDiagram renders a Mermaid class diagram. Class and member names
// are sanitized to alphanumeric characters; at most 5 attributes and 5
// methods are listed per class. Output is deterministic for identical
// input.
func UMLDiagram(uml model.UMLModel) string {
	var b strings.Builder
	b.WriteString("classDiagram\n")

	for _, class := range uml.Classes {
		fmt.Fprintf(&b, "    class %s {\n", sanitizeName(class.Name))

		attrs := class.Attributes
		if len(attrs) > 5 {
			attrs = attrs[:5]
		}
		for _, attr := range attrs {
			fmt.Fprintf(&b, "        %s%s %s\n",
				visibilityMarker(attr.Visibility),
				sanitizeName(attr.Type),
				sanitizeName(attr.Name))
		}

		methods := class.Methods
		if len(methods) > 5 {
			methods = methods[:5]
		}
		for _, method := range methods {
			fmt.Fprintf(&b, "        %s%s() %s\n",
				visibilityMarker(method.Visibility),
				sanitizeName(method.Name),
				sanitizeName(method.ReturnType))
		}

		b.WriteString("    }\n")
	}

	for _, rel := range uml.Relationships {
		from := sanitizeName(rel.From)
		to := sanitizeName(rel.To)
		switch rel.Type {
		case "inheritance":
			fmt.Fprintf(&b, "    %s <|-- %s\n", to, from)
		case "composition":
			fmt.Fprintf(&b, "    %s *-- %s\n", from, to)
		case "aggregation":
			fmt.Fprintf(&b, "    %s o-- %s\n", from, to)
		default:
			fmt.Fprintf(&b, "    %s --> %s\n", from, to)
		}
	}

	return b.String()
}
