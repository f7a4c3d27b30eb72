package env

import (
	"fmt"
	"reflect"
	"strings"
)

// DefaultClientPrefix is the name prefix client-group variables must carry
// unless overridden with [WithClientPrefix].
const DefaultClientPrefix = "PUBLIC_"

// Side tells the accessor whether it runs in the unrestricted server
// context or in the restricted client context.
type Side int

const (
	// ServerSide may read every group. Validation runs at construction.
	ServerSide Side = iota
	// ClientSide may read only the shared and client groups. Validation
	// runs on first read.
	ClientSide
)

func (s Side) String() string {
	switch s {
	case ServerSide:
		return "server"
	case ClientSide:
		return "client"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// Group identifies the schema group a variable was declared in.
type Group int

const (
	GroupShared Group = iota
	GroupClient
	GroupServer
)

func (g Group) String() string {
	switch g {
	case GroupShared:
		return "shared"
	case GroupClient:
		return "client"
	case GroupServer:
		return "server"
	default:
		return fmt.Sprintf("group(%d)", int(g))
	}
}

// Schemas holds the three declarations. Each member is a struct value, a
// pointer to a struct, or nil for an empty group.
type Schemas struct {
	Shared any
	Client any
	Server any
}

// Key is a declared variable together with its group.
type Key struct {
	Name  string
	Group Group
}

type field struct {
	key        string
	name       string
	index      int
	hasDefault bool
	oneOf      []string
}

type group struct {
	kind   Group
	typ    reflect.Type
	fields []field
}

func (g *group) fieldByName(name string) (field, bool) {
	for _, f := range g.fields {
		if f.name == name {
			return f, true
		}
	}
	return field{}, false
}

// compileSchemas turns the declarations into groups and checks the
// uniqueness and prefix rules.
func compileSchemas(s Schemas, clientPrefix string) ([]*group, error) {
	decls := []struct {
		kind Group
		v    any
	}{
		{GroupShared, s.Shared},
		{GroupClient, s.Client},
		{GroupServer, s.Server},
	}

	groups := make([]*group, 0, len(decls))
	seen := make(map[string]Group)
	for _, d := range decls {
		g, err := compileGroup(d.kind, d.v)
		if err != nil {
			return nil, err
		}

		for _, f := range g.fields {
			if prev, ok := seen[f.key]; ok {
				return nil, fmt.Errorf("%w: %s declared in both %s and %s groups", ErrInvalidSchema, f.key, prev, g.kind)
			}
			seen[f.key] = g.kind

			if clientPrefix == "" {
				continue
			}
			hasPrefix := strings.HasPrefix(f.key, clientPrefix)
			if g.kind == GroupClient && !hasPrefix {
				return nil, fmt.Errorf("%w: client variable %s must be prefixed with %s", ErrInvalidSchema, f.key, clientPrefix)
			}
			if g.kind == GroupServer && hasPrefix {
				return nil, fmt.Errorf("%w: server variable %s must not be prefixed with %s", ErrInvalidSchema, f.key, clientPrefix)
			}
		}

		groups = append(groups, g)
	}

	return groups, nil
}

func compileGroup(kind Group, v any) (*group, error) {
	if v == nil {
		return &group{kind: kind, typ: reflect.TypeOf(struct{}{})}, nil
	}

	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s group must be a struct, got %s", ErrInvalidSchema, kind, t.Kind())
	}

	g := &group{kind: kind, typ: t}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		tag, ok := sf.Tag.Lookup("env")
		key, _, _ := strings.Cut(tag, ",")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: field %s.%s has no env name", ErrInvalidSchema, t.Name(), sf.Name)
		}
		if _, dup := g.fieldIndex(key); dup {
			return nil, fmt.Errorf("%w: %s declared twice in %s group", ErrInvalidSchema, key, kind)
		}

		_, hasDefault := sf.Tag.Lookup("envDefault")
		g.fields = append(g.fields, field{
			key:        key,
			name:       sf.Name,
			index:      i,
			hasDefault: hasDefault,
			oneOf:      strings.Fields(sf.Tag.Get("oneof")),
		})
	}

	return g, nil
}

func (g *group) fieldIndex(key string) (int, bool) {
	for i, f := range g.fields {
		if f.key == key {
			return i, true
		}
	}
	return -1, false
}
