package datasource

import (
	"errors"
	"testing"

	"github.com/Slade66/reactive-sheet/internal/observer"
	"github.com/Slade66/reactive-sheet/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ observer.Observable  = (*DataSource)(nil)
	_ observer.ValueSource = (*DataSource)(nil)
)

// countingObserver 记录被通知的次数以及每次看到的数值
type countingObserver struct {
	source *DataSource
	calls  int
	seen   [][]float64
}

func (c *countingObserver) Update() error {
	c.calls++
	c.seen = append(c.seen, c.source.Values())
	return nil
}

func TestNew_StartsEmpty(t *testing.T) {
	d := New()

	assert.NotNil(t, d.Values())
	assert.Empty(t, d.Values())
	assert.Equal(t, uint64(0), d.Revision())
	assert.Equal(t, observer.FailFast, d.Policy())
}

func TestValues_DoesNotNotify(t *testing.T) {
	d := New()
	obs := &countingObserver{source: d}
	d.AddObserver(obs)

	for i := 0; i < 3; i++ {
		_ = d.Values()
	}

	assert.Equal(t, 0, obs.calls)
}

func TestSetValues_NotifiesEachObserverOnce(t *testing.T) {
	d := New()
	first := &countingObserver{source: d}
	second := &countingObserver{source: d}
	d.AddObserver(first)
	d.AddObserver(second)

	inputs := [][]float64{{1, 2, 3}, {}, {7}}
	for i, in := range inputs {
		require.NoError(t, d.SetValues(in))
		assert.Equal(t, i+1, first.calls)
		assert.Equal(t, i+1, second.calls)
	}

	assert.Equal(t, []float64{7}, first.seen[2])
	assert.Equal(t, uint64(3), d.Revision())
}

func TestSetValues_ObserversSeeNewValues(t *testing.T) {
	d := New()
	obs := &countingObserver{source: d}
	d.AddObserver(obs)

	require.NoError(t, d.SetValues([]float64{4, 5}))

	require.Len(t, obs.seen, 1)
	assert.Equal(t, []float64{4, 5}, obs.seen[0])
}

func TestSetValues_CopiesInput(t *testing.T) {
	d := New()
	in := []float64{1, 2, 3}

	require.NoError(t, d.SetValues(in))
	in[0] = 100

	assert.Equal(t, []float64{1, 2, 3}, d.Values())

	out := d.Values()
	out[1] = 200
	assert.Equal(t, []float64{1, 2, 3}, d.Values())
}

func TestRemoveObserver_StopsNotifications(t *testing.T) {
	d := New()
	removed := &countingObserver{source: d}
	kept := &countingObserver{source: d}
	d.AddObserver(removed)
	d.AddObserver(kept)

	require.NoError(t, d.SetValues([]float64{1}))
	require.NoError(t, d.RemoveObserver(removed))
	require.NoError(t, d.SetValues([]float64{2}))

	assert.Equal(t, 1, removed.calls)
	assert.Equal(t, 2, kept.calls)
	assert.ErrorIs(t, d.RemoveObserver(removed), observer.ErrObserverNotFound)
}

func TestSetValues_FailFastPropagates(t *testing.T) {
	d := New()
	boom := errors.New("boom")
	before := &countingObserver{source: d}
	after := &countingObserver{source: d}
	d.AddObserver(before)
	d.AddObserver(observer.NewFuncObserver(func() error { return boom }))
	d.AddObserver(after)

	err := d.SetValues([]float64{1, 2})

	assert.ErrorIs(t, err, observer.ErrObserverUpdateFailed)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, before.calls)
	assert.Equal(t, 0, after.calls)
	assert.Equal(t, []float64{1, 2}, d.Values())
	assert.Equal(t, uint64(1), d.Revision())
}

func TestSetValues_CollectErrorsNotifiesEveryone(t *testing.T) {
	d := New(WithNotifyPolicy(observer.CollectErrors))
	boom := errors.New("boom")
	after := &countingObserver{source: d}
	d.AddObserver(observer.NewFuncObserver(func() error { return boom }))
	d.AddObserver(after)

	err := d.SetValues([]float64{3})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, after.calls)
}

func TestAggregatorTotals(t *testing.T) {
	d := New()
	total := observer.NewTotalObserver("sheet", d, report.Discard)
	d.AddObserver(total)

	require.NoError(t, d.SetValues([]float64{1, 2, 3, 4}))
	assert.Equal(t, float64(10), total.Total())

	require.NoError(t, d.SetValues([]float64{}))
	assert.Equal(t, float64(0), total.Total())
}

func TestEndToEnd_ChartThenTotal(t *testing.T) {
	d := New()
	rec := report.NewRecorder()
	total := observer.NewTotalObserver("sheet", d, rec)
	chart := observer.NewChartObserver("bar-chart", d, rec)

	d.AddObserver(chart)
	d.AddObserver(total)

	require.NoError(t, d.SetValues([]float64{1, 2, 3, 4}))

	reports := rec.Reports()
	require.Len(t, reports, 2)
	assert.Equal(t, report.KindRender, reports[0].Kind)
	assert.Equal(t, chart.ID(), reports[0].ObserverID)
	assert.Equal(t, report.KindTotal, reports[1].Kind)
	assert.Equal(t, float64(10), reports[1].Total)

	rec.Reset()
	require.NoError(t, d.RemoveObserver(chart))
	require.NoError(t, d.SetValues([]float64{10, 1}))

	reports = rec.Reports()
	require.Len(t, reports, 1)
	assert.Equal(t, report.KindTotal, reports[0].Kind)
	assert.Equal(t, float64(11), reports[0].Total)
	assert.Equal(t, float64(11), total.Total())
}
