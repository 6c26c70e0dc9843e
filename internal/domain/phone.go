package domain

import "encoding/json"

// Phone is a phone-for-sale listing. id and created_at are assigned by
// the store on insert and never change afterwards.
type Phone struct {
	ID          string   `db:"id" json:"id"`
	Name        string   `db:"name" json:"name"`
	Brand       string   `db:"brand" json:"brand"`
	Price       int      `db:"price" json:"price"`
	Condition   string   `db:"condition" json:"condition"` // Good | Like New | Excellent
	Description string   `db:"description" json:"description"`
	ImagesJSON  string   `db:"images_json" json:"-"`
	Images      []string `db:"-" json:"images"`
	Storage     string   `db:"storage" json:"storage"`
	Battery     *string  `db:"battery" json:"battery"`
	Available   bool     `db:"available" json:"available"`
	IsDeal      bool     `db:"is_deal" json:"is_deal"`
	CreatedAt   string   `db:"created_at" json:"created_at"`
}

// DecodeImages unpacks the stored JSON image list into Images.
func (p *Phone) DecodeImages() error {
	if p.ImagesJSON == "" {
		p.Images = []string{}
		return nil
	}
	return json.Unmarshal([]byte(p.ImagesJSON), &p.Images)
}

// EncodeImages packs an image URL list for storage.
func EncodeImages(urls []string) (string, error) {
	b, err := json.Marshal(urls)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// PhoneCreate is the payload for a new listing. Available and IsDeal
// take their defaults when the client omits them.
type PhoneCreate struct {
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Price       int      `json:"price"`
	Condition   string   `json:"condition"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Storage     string   `json:"storage"`
	Battery     *string  `json:"battery"`
	Available   *bool    `json:"available"`
	IsDeal      *bool    `json:"is_deal"`
}

// PhonePatch is a sparse update. Every field is a pointer so a supplied
// false or empty value is distinguishable from an absent one.
type PhonePatch struct {
	Name        *string   `json:"name"`
	Brand       *string   `json:"brand"`
	Price       *int      `json:"price"`
	Condition   *string   `json:"condition"`
	Description *string   `json:"description"`
	Images      *[]string `json:"images"`
	Storage     *string   `json:"storage"`
	Battery     *string   `json:"battery"`
	Available   *bool     `json:"available"`
	IsDeal      *bool     `json:"is_deal"`
}

// Empty reports whether no field was supplied at all.
func (p PhonePatch) Empty() bool {
	return p.Name == nil && p.Brand == nil && p.Price == nil &&
		p.Condition == nil && p.Description == nil && p.Images == nil &&
		p.Storage == nil && p.Battery == nil && p.Available == nil && p.IsDeal == nil
}

// PhoneFilter narrows the listing query. Nil pointer fields leave that
// side of the constraint off.
type PhoneFilter struct {
	AvailableOnly bool
	DealsOnly     bool
	Brand         string
	MinPrice      *int
	MaxPrice      *int
}
