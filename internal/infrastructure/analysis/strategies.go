package analysis

// ConstantScorer reports a fixed confidence regardless of input. It stands
// in for a measured scoring signal behind the ConfidenceScorer contract.
type ConstantScorer struct {
	Value float64
}

func NewConstantScorer(value float64) ConstantScorer {
	return ConstantScorer{Value: value}
}

func (s ConstantScorer) Score(string) float64 {
	return s.Value
}

// ConstantDetector reports a fixed ISO-639-1 language code. It stands in
// for a real language-detection step behind the LanguageDetector contract.
type ConstantDetector struct {
	Code string
}

func NewConstantDetector(code string) ConstantDetector {
	return ConstantDetector{Code: code}
}

func (d ConstantDetector) Detect(string) string {
	return d.Code
}
