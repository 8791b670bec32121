package domain

// Product is a catalog entry for a salon set. Entries are loaded once at
// startup and never mutated afterwards.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceEGP    int64    `json:"priceEGP"`
	Rating      float64  `json:"rating"`
	Images      []string `json:"images"`
	Features    []string `json:"features"`
	Colors      []string `json:"colors"`
	WoodPaints  []string `json:"woodPaints"`
	PiecesCount int      `json:"piecesCount"`
}

// WoodPaint is one of the factory's fixed wood finish options. Customers pick
// from this closed set; fabric colors stay free text.
type WoodPaint string

const (
	PaintWhite     WoodPaint = "أبيض"
	PaintSilver    WoodPaint = "فضي"
	PaintChampagne WoodPaint = "شامبين"
	PaintGold      WoodPaint = "ذهبي جولد"
)

// WoodPaints lists the selectable finishes in display order.
func WoodPaints() []WoodPaint {
	return []WoodPaint{PaintWhite, PaintSilver, PaintChampagne, PaintGold}
}

func (p WoodPaint) Valid() bool {
	switch p {
	case PaintWhite, PaintSilver, PaintChampagne, PaintGold:
		return true
	}
	return false
}
