package drawer_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-seqpipe/pkg/pipeline/drawer"
	"github.com/askiada/go-seqpipe/pkg/pipeline/measure"
)

func TestDrawStageChain(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "pipeline.svg")
	drw := drawer.NewSVGDrawer(fileName)

	require.NoError(t, drw.AddStage("start"))
	require.NoError(t, drw.AddStage("trim"))
	require.NoError(t, drw.AddStage("align"))
	require.NoError(t, drw.AddLink("start", "trim"))
	require.NoError(t, drw.AddLink("trim", "align"))
	require.NoError(t, drw.SetStageDuration("trim", 3*time.Second))

	require.NoError(t, drw.Draw())

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Contains(t, string(content), "digraph")
	assert.Contains(t, string(content), "trim")
	assert.Contains(t, string(content), "align")
}

func TestDrawWithMeasure(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "pipeline.svg")
	drw := drawer.NewSVGDrawer(fileName)

	require.NoError(t, drw.AddStage("trim"))
	require.NoError(t, drw.AddStage("align"))
	require.NoError(t, drw.AddLink("trim", "align"))

	msr := measure.New()
	trim := msr.AddStage("trim")
	trim.AddCommand(time.Second)
	trim.SetStageDuration(2 * time.Second)
	align := msr.AddStage("align")
	align.AddCommand(5 * time.Second)
	align.SetStageDuration(10 * time.Second)

	require.NoError(t, drw.AddMeasure(msr))
	require.NoError(t, drw.Draw())

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Contains(t, string(content), "1 commands")
}

func TestAddDuplicateStage(t *testing.T) {
	drw := drawer.NewSVGDrawer(filepath.Join(t.TempDir(), "pipeline.svg"))

	require.NoError(t, drw.AddStage("trim"))
	assert.Error(t, drw.AddStage("trim"))
}
