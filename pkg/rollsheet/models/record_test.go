package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategories(t *testing.T) {
	tests := []struct {
		raw    string
		gender Gender
		gIndex int
		sex    Sex
		sIndex int
	}{
		{"F", GenderF, 0, Sex("F"), -1},
		{" m ", GenderM, 1, SexM, 1},
		{"Otro", GenderOther, 2, Sex("Otro"), -1},
		{"LGBTIQ+", GenderOther, 2, Sex("LGBTIQ+"), -1},
		{"Hombre", Gender("Hombre"), -1, SexH, 0},
		{"intersex", Gender("intersex"), -1, SexI, 2},
		{"", Gender(""), -1, Sex(""), -1},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			g := ParseGender(tt.raw)
			assert.Equal(t, tt.gender, g)
			assert.Equal(t, tt.gIndex, g.Index())
			s := ParseSex(tt.raw)
			assert.Equal(t, tt.sex, s)
			assert.Equal(t, tt.sIndex, s.Index())
		})
	}
}

func TestParseAgeRange(t *testing.T) {
	tests := []struct {
		raw   string
		want  AgeRange
		index int
	}{
		{"18 a 35 años", Age18To35, 0},
		{"18-35", Age18To35, 0},
		{"36 a 64 años", Age36To64, 1},
		{"65 años o más", Age65Plus, 2},
		{"70", AgeRange("70"), -1},
		{"", AgeRange(""), -1},
	}
	for _, tt := range tests {
		got := ParseAgeRange(tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
		assert.Equal(t, tt.index, got.Index(), tt.raw)
	}
}

func TestColumnsForDefaultSpan(t *testing.T) {
	cols := ColumnsFor(DefaultNameSpan)

	assert.Equal(t, 2, cols.Number)
	assert.Equal(t, 6, cols.ID)
	assert.Equal(t, 9, cols.Phone)
	assert.Equal(t, [3]int{10, 11, 12}, cols.Gender)
	assert.Equal(t, [3]int{13, 14, 15}, cols.Sex)
	assert.Equal(t, [3]int{16, 17, 18}, cols.AgeRange)
	assert.Equal(t, 19, cols.Signature)
	assert.Equal(t, 2, cols.First())
	assert.Equal(t, 19, cols.Last())
	assert.Len(t, cols.MarkColumns(), 9)
}

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout(0)
	assert.Equal(t, DefaultSlotCount, l.SlotCount)
	assert.Equal(t, DefaultAnchorRow, l.SlotRows[0])
	assert.Equal(t, 26, l.LastRow())

	l = DefaultLayout(3)
	assert.Equal(t, []int{11, 12, 13}, l.SlotRows)
}
