package slot

import "slot_backend/internal/model"

// Цвета символов по индексу
var symbolColors = [...]string{"#e74c3c", "#f1c40f", "#2ecc71", "#3498db", "#9b59b6"}

// SymbolView ячейка барабана: лицевое значение и подсветка выигрыша
type SymbolView struct {
	id          model.Symbol
	highlighted bool
}

func NewSymbolView(id model.Symbol) *SymbolView {
	return &SymbolView{id: id}
}

func (s *SymbolView) ID() model.Symbol {
	return s.id
}

// Value вес символа в выплате (id+1)
func (s *SymbolView) Value() int {
	return s.id.Value()
}

func (s *SymbolView) SetID(id model.Symbol) {
	s.id = id
}

func (s *SymbolView) SetHighlight(enabled bool) {
	s.highlighted = enabled
}

func (s *SymbolView) Highlighted() bool {
	return s.highlighted
}

func (s *SymbolView) Color() string {
	return symbolColors[int(s.id)%len(symbolColors)]
}

func (s *SymbolView) Cell() model.Cell {
	return model.Cell{
		ID:          s.id,
		Value:       s.Value(),
		Color:       s.Color(),
		Highlighted: s.highlighted,
	}
}
