package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPhone(t *testing.T) {
	assert.Equal(t, "(11) 98765-4321", Phone("11987654321"))
	assert.Equal(t, "(11) 8765-4321", Phone("1187654321"))
	assert.Equal(t, "(11) 98765-4321", Phone("(11)98765-4321"))
	assert.Equal(t, "12345", Phone("12345"))
}

func TestDates(t *testing.T) {
	ts := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.Local)
	assert.Equal(t, "05/03/2026 14:30", DateTime(ts))
	assert.Equal(t, "05/03/2026", DateShort(ts))
}

func TestCEP(t *testing.T) {
	assert.Equal(t, "01310-100", CEP("01310100"))
	assert.Equal(t, "01310-100", CEP("01310-100"))
	assert.Equal(t, "123", CEP("123"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "long te...", Truncate("long text here", 7))
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "AS", Initials("ana silva"))
	assert.Equal(t, "AC", Initials("Ana Maria Costa"))
	assert.Equal(t, "A", Initials("ana"))
	assert.Equal(t, "", Initials("  "))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Gato", Capitalize("gATO"))
	assert.Equal(t, "", Capitalize(""))
}
