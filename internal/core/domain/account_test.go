package domain_test

import (
	"testing"

	"github.com/SscSPs/property_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestLevelForCode(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		want    int
		wantErr bool
	}{
		{name: "class", code: "1", want: 1},
		{name: "group", code: "11", want: 2},
		{name: "account", code: "1105", want: 3},
		{name: "subaccount", code: "110505", want: 4},
		{name: "auxiliary", code: "11050501", want: 5},
		{name: "second auxiliary", code: "1105050101", want: 6},
		{name: "odd length", code: "110", wantErr: true},
		{name: "non digit", code: "11A5", wantErr: true},
		{name: "empty", code: "", wantErr: true},
		{name: "too long", code: "110505010101", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.LevelForCode(tt.code)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParentCode(t *testing.T) {
	assert.Equal(t, "", domain.ParentCode("1"))
	assert.Equal(t, "1", domain.ParentCode("11"))
	assert.Equal(t, "11", domain.ParentCode("1105"))
	assert.Equal(t, "1105", domain.ParentCode("110505"))
	assert.Equal(t, "110505", domain.ParentCode("11050501"))
	assert.Equal(t, "", domain.ParentCode("abc"))
}

func TestClassForCode(t *testing.T) {
	assert.Equal(t, domain.Asset, domain.ClassForCode("1105"))
	assert.Equal(t, domain.Liability, domain.ClassForCode("2205"))
	assert.Equal(t, domain.Equity, domain.ClassForCode("3105"))
	assert.Equal(t, domain.Income, domain.ClassForCode("4170"))
	assert.Equal(t, domain.Expense, domain.ClassForCode("5135"))
	assert.Equal(t, domain.Other, domain.ClassForCode("8105"))
	assert.Equal(t, domain.Other, domain.ClassForCode(""))

	assert.True(t, domain.IsDebitNormalClass(domain.Asset))
	assert.True(t, domain.IsDebitNormalClass(domain.Expense))
	assert.False(t, domain.IsDebitNormalClass(domain.Income))
}
