package slot

import (
	"cmp"
	"math"
	"slices"

	"slot_backend/internal/config"
	"slot_backend/internal/model"
)

// Видимых строк на барабане
const visibleSymbols = 3

// Rand источник случайных символов
type Rand interface {
	IntN(n int) int
}

// Reel кольцо ячеек: visibleSymbols видимых и по buffer с каждой стороны.
// offset прокрутки всегда лежит в [0, длина кольца).
type Reel struct {
	cfg         config.ReelConfig
	rng         Rand
	symbolCount int

	cells    []*SymbolView
	offset   float64
	speed    float64
	stopping bool
}

// NewReel барабан со случайными символами, видны ячейки buffer..buffer+2
func NewReel(cfg config.ReelConfig, symbolCount int, rng Rand) *Reel {
	total := visibleSymbols + cfg.Buffer()*2
	r := &Reel{
		cfg:         cfg,
		rng:         rng,
		symbolCount: symbolCount,
		cells:       make([]*SymbolView, total),
	}
	for i := range r.cells {
		r.cells[i] = NewSymbolView(r.randomSymbol())
	}
	return r
}

func (r *Reel) StartSpin() {
	r.speed = r.cfg.MaxSpeed()
	r.stopping = false
}

// StopSpin начинает торможение и записывает результат в центральные ячейки кольца
func (r *Reel) StopSpin(result [visibleSymbols]model.Symbol) {
	start := r.cfg.Buffer()
	for i := 0; i < visibleSymbols; i++ {
		r.cells[start+i].SetID(result[i])
	}
	r.cells[0].SetID(r.randomSymbol())
	r.cells[start+visibleSymbols].SetID(r.randomSymbol())

	// Стоящий барабан тормозить нечего
	if r.speed > 0 {
		r.stopping = true
	}
}

// Update сдвигает барабан на один кадр, delta в долях кадра
func (r *Reel) Update(delta float64) {
	if r.speed <= 0 {
		return
	}

	before := r.offset
	r.offset += r.speed * delta

	if !r.stopping {
		r.rerollWrapped(before, r.offset)
		r.offset = r.wrap(r.offset)
		return
	}

	r.speed *= r.cfg.Deceleration()

	size := r.cfg.SymbolSize()
	target := math.Round(r.offset/size) * size
	distance := target - r.offset

	r.offset += distance * r.cfg.SnapFactor()

	if math.Abs(distance) < r.cfg.SnapEpsilon() && r.speed < r.cfg.StopEpsilon() {
		r.offset = target
		r.speed = 0
		r.stopping = false
	}
	r.offset = r.wrap(r.offset)
}

func (r *Reel) IsStopped() bool {
	return !r.stopping && r.speed == 0
}

func (r *Reel) Offset() float64 {
	return r.offset
}

func (r *Reel) Speed() float64 {
	return r.speed
}

func (r *Reel) Stopping() bool {
	return r.stopping
}

// VisibleSymbols значения видимых ячеек сверху вниз
func (r *Reel) VisibleSymbols() []model.Symbol {
	views := r.VisibleViews()
	out := make([]model.Symbol, len(views))
	for i, v := range views {
		out[i] = v.ID()
	}
	return out
}

// VisibleViews ячейки, чей центр лежит в окне барабана, сверху вниз (не больше трёх).
// Полуинтервал по центрам даёт ровно три ячейки и не зависит от ошибки округления y.
func (r *Reel) VisibleViews() []*SymbolView {
	type item struct {
		view *SymbolView
		y    float64
	}

	items := make([]item, len(r.cells))
	for i, c := range r.cells {
		items[i] = item{view: c, y: r.cellY(i)}
	}
	slices.SortFunc(items, func(a, b item) int {
		return cmp.Compare(a.y, b.y)
	})

	size := r.cfg.SymbolSize()
	top, bottom := -size/2, size*visibleSymbols-size/2
	out := make([]*SymbolView, 0, visibleSymbols)
	for _, it := range items {
		if it.y >= top && it.y < bottom {
			out = append(out, it.view)
			if len(out) == visibleSymbols {
				break
			}
		}
	}
	return out
}

func (r *Reel) ClearHighlights() {
	for _, c := range r.cells {
		c.SetHighlight(false)
	}
}

// cellY верхняя граница ячейки i относительно окна
func (r *Reel) cellY(i int) float64 {
	size := r.cfg.SymbolSize()
	return r.wrap(float64(i)*size+r.offset) - float64(r.cfg.Buffer())*size
}

// rerollWrapped перебрасывает ячейки, ушедшие с низа кольца наверх.
// Ячейка i уходит наверх, когда offset пересекает c*size при i = -c mod n.
func (r *Reel) rerollWrapped(from, to float64) {
	size := r.cfg.SymbolSize()
	n := len(r.cells)

	first := int(math.Floor(from/size)) + 1
	last := int(math.Floor(to / size))
	if last-first+1 > n {
		first = last - n + 1
	}
	for c := first; c <= last; c++ {
		idx := ((-c)%n + n) % n
		r.cells[idx].SetID(r.randomSymbol())
	}
}

func (r *Reel) wrap(v float64) float64 {
	ring := float64(len(r.cells)) * r.cfg.SymbolSize()
	v = math.Mod(v, ring)
	if v < 0 {
		v += ring
	}
	return v
}

func (r *Reel) randomSymbol() model.Symbol {
	return model.Symbol(r.rng.IntN(r.symbolCount))
}
