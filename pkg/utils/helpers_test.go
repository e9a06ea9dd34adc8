package utils_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"go-segmentation/pkg/utils"
)

func TestParseValue(t *testing.T) {
	assert.Equal(t, 42, utils.ParseValue(" 42 "))
	assert.Equal(t, 3.5, utils.ParseValue("3.5"))
	assert.Equal(t, "Electronics", utils.ParseValue("Electronics"))
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, utils.IsNumeric("42"))
	assert.True(t, utils.IsNumeric("1200.50"))
	assert.False(t, utils.IsNumeric("Books"))
	assert.False(t, utils.IsNumeric(""))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, utils.ParseDuration("2h", time.Hour))
	assert.Equal(t, time.Hour, utils.ParseDuration("", time.Hour))
	assert.Equal(t, time.Hour, utils.ParseDuration("bogus", time.Hour))
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "my_customers.csv", utils.SanitizeFilename("my customers.csv"))
	assert.Equal(t, "data.csv", utils.SanitizeFilename("../../data.csv"))
	assert.Equal(t, "upload.csv", utils.SanitizeFilename("///"))
}

func TestHasCSVExtension(t *testing.T) {
	assert.True(t, utils.HasCSVExtension("customers.csv"))
	assert.True(t, utils.HasCSVExtension("CUSTOMERS.CSV"))
	assert.False(t, utils.HasCSVExtension("customers.txt"))
	assert.False(t, utils.HasCSVExtension("csv"))
}
