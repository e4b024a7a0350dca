package value

type wordData struct {
	symbol *Value // KindSymbol
	quote  *Value // KindQuote
}

// NewWord constructs a word value pairing a symbol identifier with its
// quote body. symbol must be KindSymbol and quote must be KindQuote
// (spec.md §3 "Words are pairs (symbol, quote)").
func NewWord(symbol, quote *Value) *Value {
	v := newValue(KindWord)
	v.word = &wordData{symbol: symbol.Retain(), quote: quote.Retain()}
	return v
}

// WordSymbol returns the word's symbol.
func (v *Value) WordSymbol() *Value { return v.word.symbol }

// WordQuote returns the word's quote body.
func (v *Value) WordQuote() *Value { return v.word.quote }
