package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Name", "name"},
		{"  First Name ", "first_name"},
		{"Preço Médio", "preco_medio"},
		{"a--b__c", "a_b_c"},
		{"%", ""},
		{"", ""},
		{"Field 1", "field_1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slug(tt.in), "Slug(%q)", tt.in)
	}
}

func TestMakeHeader(t *testing.T) {
	got := MakeHeader([]string{"Name", "", "name", "Name", "%"})
	assert.Equal(t, []string{"name", "field_1", "name_2", "name_3", "field_4"}, got)
}

func TestBuild_HeaderFromFirstRow(t *testing.T) {
	rows := [][]string{
		{"Name", "Age"},
		{"alice", "30"},
		{"bob"},
	}

	tbl, err := Build(rows, Metadata{MetaImportedFrom: "html"}, BuildOptions{Encoding: "utf-8"})
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "age"}, tbl.Fields)
	assert.Equal(t, [][]string{{"alice", "30"}, {"bob", ""}}, tbl.Rows)
	assert.Equal(t, "html", tbl.Meta[MetaImportedFrom])
	assert.Equal(t, "utf-8", tbl.Encoding)
	assert.Equal(t, 2, tbl.RowCount())
	assert.Equal(t, 2, tbl.ColCount())
}

func TestBuild_MetadataIsCopied(t *testing.T) {
	meta := Metadata{MetaImportedFrom: "html"}
	tbl, err := Build([][]string{{"a"}}, meta, BuildOptions{})
	require.NoError(t, err)

	meta[MetaImportedFrom] = "changed"
	assert.Equal(t, "html", tbl.Meta[MetaImportedFrom])
}

func TestBuild_ExplicitFields(t *testing.T) {
	rows := [][]string{{"1", "2"}, {"3", "4"}}

	tbl, err := Build(rows, nil, BuildOptions{Fields: []string{"x", "y"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, tbl.Fields)
	assert.Len(t, tbl.Rows, 2)

	tbl, err = Build(rows, nil, BuildOptions{Fields: []string{"x", "y"}, SkipHeader: Bool(true)})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"3", "4"}}, tbl.Rows)
}

func TestBuild_RaggedRow(t *testing.T) {
	rows := [][]string{{"a"}, {"1", "2"}}

	_, err := Build(rows, nil, BuildOptions{})
	require.ErrorIs(t, err, ErrRaggedRow)
}

func TestBuild_Empty(t *testing.T) {
	tbl, err := Build(nil, Metadata{}, BuildOptions{})
	require.NoError(t, err)
	assert.Empty(t, tbl.Fields)
	assert.Empty(t, tbl.Rows)
}

func TestBuild_ImportFields(t *testing.T) {
	rows := [][]string{{"a", "b", "c"}, {"1", "2", "3"}}

	tbl, err := Build(rows, nil, BuildOptions{ImportFields: []string{"C", "a"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, tbl.Fields)
	assert.Equal(t, [][]string{{"3", "1"}}, tbl.Rows)

	_, err = Build(rows, nil, BuildOptions{ImportFields: []string{"z"}})
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestTable_Accessors(t *testing.T) {
	tbl := &Table{
		Fields: []string{"a", "b"},
		Rows:   [][]string{{"1", "2"}},
	}

	v, err := tbl.Value(0, "b")
	require.NoError(t, err)
	assert.Equal(t, "2", v)

	_, err = tbl.Value(0, "missing")
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = tbl.Get(1, 0)
	assert.Error(t, err)
	_, err = tbl.Get(0, 5)
	assert.Error(t, err)

	assert.Equal(t, "a\tb\n1\t2\n", tbl.String())
}

func TestTable_Serialize(t *testing.T) {
	tbl := &Table{
		Fields: []string{"a"},
		Rows:   [][]string{{"1"}, {"2"}, {"3"}},
	}

	var got []string
	for row := range tbl.Serialize() {
		got = append(got, row[0])
		row[0] = "mutated"
		if len(got) == 2 {
			break
		}
	}

	assert.Equal(t, []string{"1", "2"}, got)
	assert.Equal(t, "1", tbl.Rows[0][0])
}
