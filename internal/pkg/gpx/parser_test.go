package gpx_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotaicode/gpx-analyzer/internal/pkg/gpx"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test">
    <trk>
        <trkseg>
            <trkpt lat="47.123" lon="8.123">
                <ele>100</ele>
            </trkpt>
            <trkpt lat="47.124" lon="8.124">
                <ele>150</ele>
            </trkpt>
            <trkpt lat="47.125" lon="8.125">
                <ele>120</ele>
            </trkpt>
        </trkseg>
    </trk>
</gpx>
`

const sampleGPXNoElevation = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test">
    <trk>
        <trkseg>
            <trkpt lat="47.123" lon="8.123"></trkpt>
            <trkpt lat="47.124" lon="8.124"></trkpt>
        </trkseg>
    </trk>
</gpx>
`

func TestParseTrackpoints(t *testing.T) {
	t.Run("valid gpx with elevation", func(t *testing.T) {
		points, err := gpx.ParseTrackpoints(strings.NewReader(sampleGPX))
		require.NoError(t, err)
		require.Len(t, points, 3)

		assert.Equal(t, 47.123, points[0].Lat)
		assert.Equal(t, 8.123, points[0].Lon)
		require.NotNil(t, points[0].Elevation)
		assert.Equal(t, 100.0, *points[0].Elevation)

		require.NotNil(t, points[2].Elevation)
		assert.Equal(t, 120.0, *points[2].Elevation)
	})

	t.Run("gpx without elevation", func(t *testing.T) {
		points, err := gpx.ParseTrackpoints(strings.NewReader(sampleGPXNoElevation))
		require.NoError(t, err)
		require.Len(t, points, 2)
		assert.Nil(t, points[0].Elevation)
		assert.Nil(t, points[1].Elevation)
	})

	t.Run("invalid content", func(t *testing.T) {
		_, err := gpx.ParseTrackpoints(strings.NewReader("not a gpx file"))
		assert.Error(t, err)
	})

	t.Run("empty track", func(t *testing.T) {
		empty := `<?xml version="1.0"?><gpx version="1.1" creator="test"></gpx>`
		points, err := gpx.ParseTrackpoints(strings.NewReader(empty))
		require.NoError(t, err)
		assert.Empty(t, points)
	})
}
