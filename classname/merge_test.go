package classname

import (
	"bytes"
	"html/template"
	"strings"
	"testing"

	"github.com/MKhiriev/go-appenv/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCN(t *testing.T) {
	tests := []struct {
		name   string
		values []Value
		want   string
	}{
		{"all falsy", []Value{Empty{}, String(""), Cond{{"x", false}}, List{nil}}, ""},
		{"two tokens", []Value{String("a"), String("b")}, "a b"},
		{"conditional map", []Value{Map(map[string]bool{"active": true, "disabled": false})}, "active"},
		{"later padding wins", []Value{String("p-2"), String("p-4")}, "p-4"},
		{"nested lists", []Value{List{List{String("a"), List{String("b")}}, String("c")}}, "a b c"},
		{"background colors", []Value{String("bg-red-500"), String("bg-blue-500")}, "bg-blue-500"},
		{"padding overrides padding-x", []Value{String("px-2 p-4")}, "p-4"},
		{"hover variant is separate", []Value{String("hover:bg-red-500 bg-blue-500")}, "hover:bg-red-500 bg-blue-500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CN(tt.values...))
		})
	}
}

func TestMerge_Idempotent(t *testing.T) {
	mergers := map[string]*Merger{
		"tailwind": NewMerger(nil),
		"table":    NewMerger(DefaultGroupTable()),
	}
	inputs := []Value{
		String("a b"),
		List{String("p-2 flex"), If(true, "p-4"), String("text-sm")},
		String("btn btn card"),
	}

	for name, m := range mergers {
		t.Run(name, func(t *testing.T) {
			for _, in := range inputs {
				once := m.Merge(in)
				twice := m.Merge(String(once), String(once))
				assert.Equal(t, once, twice)
				assert.Equal(t, once, m.Merge(String(once)))
			}
		})
	}
}

func TestMerge_DeduplicatesResolverOutput(t *testing.T) {
	ctrl := gomock.NewController(t)

	resolver := mock.NewMockResolver(ctrl)
	resolver.EXPECT().
		Resolve([]string{"a", "b", "a", "c"}).
		Return([]string{"a", "b", "a", "", "c"})

	m := NewMerger(resolver)
	assert.Equal(t, "b a c", m.Merge(String("a b"), List{String("a"), String("c")}))
}

func TestMerge_SkipsResolverWhenEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)

	// no EXPECT: any call fails the test
	resolver := mock.NewMockResolver(ctrl)

	m := NewMerger(resolver)
	assert.Equal(t, "", m.Merge(Empty{}, String("  "), If(false, "x")))
}

func TestMerge_GroupTable(t *testing.T) {
	m := NewMerger(DefaultGroupTable())

	got := m.Merge(
		String("flex p-2 text-sm"),
		Cond{{"hidden", true}, {"p-6", false}},
		List{String("p-4"), String("text-lg")},
	)
	assert.Equal(t, "hidden p-4 text-lg", got)
}

func TestTailwindResolver_Empty(t *testing.T) {
	assert.Empty(t, TailwindResolver{}.Resolve(nil))
}

func TestTailwindResolver_KeepsInputOrder(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{
			name:   "mixed utilities",
			tokens: strings.Fields("flex p-2 m-2 text-sm p-4 bg-blue-500"),
			want:   strings.Fields("flex m-2 text-sm p-4 bg-blue-500"),
		},
		{
			name:   "unknown classes stay in place",
			tokens: strings.Fields("card px-2 btn py-1 shadow p-3 active"),
			want:   strings.Fields("card btn shadow p-3 active"),
		},
		{
			name:   "repeated token keeps last position",
			tokens: strings.Fields("flex p-2 text-sm flex underline"),
			want:   strings.Fields("p-2 text-sm flex underline"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// twmerge builds its result from a map; repeat to catch reordering.
			for range 50 {
				require.Equal(t, tt.want, TailwindResolver{}.Resolve(tt.tokens))
			}
		})
	}
}

func TestCN_StableAcrossCalls(t *testing.T) {
	want := "flex m-2 text-sm p-4 bg-blue-500"
	for range 50 {
		require.Equal(t, want, CN(String("flex p-2 m-2 text-sm p-4 bg-blue-500")))
	}
}

func TestFuncMap(t *testing.T) {
	tmpl, err := template.New("t").
		Funcs(FuncMap(nil)).
		Parse(`<div class="{{ cn "p-2 font-bold" .Extra .Toggles }}"></div>`)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]any{
		"Extra":   []string{"p-4"},
		"Toggles": map[string]bool{"underline": true, "italic": false},
	})
	require.NoError(t, err)

	assert.Equal(t, `<div class="font-bold p-4 underline"></div>`, buf.String())
}

func TestFuncMap_CustomMerger(t *testing.T) {
	tmpl, err := template.New("t").
		Funcs(FuncMap(NewMerger(DefaultGroupTable()))).
		Parse(`{{ cn "block" "flex" }}`)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Execute(&buf, nil))
	assert.Equal(t, "flex", buf.String())
}
