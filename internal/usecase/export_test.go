package usecase_test

import (
	"bytes"
	"strings"
	"testing"

	"aeron-recovery-service/internal/testutil"
	"aeron-recovery-service/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteExport(t *testing.T) {
	records := sampleStore(testutil.FixedClock()).List()[:2]

	var buf bytes.Buffer
	require.NoError(t, usecase.WriteExport(&buf, records))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, []string{
		`"Flight","Route","Departure","Status","Priority","Passengers","Impact"`,
		`"EK203","JFK → LHR","16:45 Jun 6","Cancelled","Critical","354","high severity"`,
		`"EK215","JFK → DXB","15:30 Jun 6","Delayed +120m","High","487","high severity"`,
	}, lines)
}

func TestWriteExport_HeaderOnlyForEmptySet(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, usecase.WriteExport(&buf, nil))

	assert.Equal(t, `"Flight","Route","Departure","Status","Priority","Passengers","Impact"`, buf.String())
}
