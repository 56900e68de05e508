package raster

// MemorySource is an in-memory Source for tests and callers that already
// hold a decoded grid.
type MemorySource struct {
	Cols, Rows int
	Transform  [6]float64
	NoDataVal  float64
	HasNoData  bool
	Samples    []int16
}

var _ Source = (*MemorySource)(nil)

func (m *MemorySource) Size() (cols, rows int)   { return m.Cols, m.Rows }
func (m *MemorySource) GeoTransform() [6]float64 { return m.Transform }
func (m *MemorySource) NoData() (float64, bool)  { return m.NoDataVal, m.HasNoData }
func (m *MemorySource) Read() ([]int16, error)   { return m.Samples, nil }
func (m *MemorySource) Close() error             { return nil }
