package services

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"phonestore/internal/domain"
	"phonestore/internal/repos"
	"phonestore/internal/validate"
)

var (
	ErrNotFound = errors.New("phone not found")
	ErrNoFields = errors.New("no fields to update")
	ErrInvalid  = errors.New("invalid payload")
)

type PhoneService struct {
	Phones *repos.PhoneRepo
}

func NewPhoneService(phones *repos.PhoneRepo) *PhoneService {
	return &PhoneService{Phones: phones}
}

func (s *PhoneService) List(f domain.PhoneFilter) ([]domain.Phone, error) {
	phones, err := s.Phones.List(f)
	if err != nil {
		return nil, err
	}
	for i := range phones {
		if err := phones[i].DecodeImages(); err != nil {
			return nil, err
		}
	}
	if phones == nil {
		phones = []domain.Phone{}
	}
	return phones, nil
}

// Brands returns the deduplicated, lexicographically sorted brand set.
func (s *PhoneService) Brands(availableOnly bool) ([]string, error) {
	rows, err := s.Phones.Brands(availableOnly)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(rows))
	out := make([]string, 0, len(rows))
	for _, b := range rows {
		if _, ok := seen[b]; ok {
			continue
		}
		seen[b] = struct{}{}
		out = append(out, b)
	}
	sort.Strings(out)
	return out, nil
}

func (s *PhoneService) Get(id string) (domain.Phone, error) {
	p, err := s.Phones.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Phone{}, ErrNotFound
		}
		return domain.Phone{}, err
	}
	if err := p.DecodeImages(); err != nil {
		return domain.Phone{}, err
	}
	return p, nil
}

// Create validates the payload, assigns an id and inserts. The stored
// row is read back so the response carries the store-assigned timestamp.
func (s *PhoneService) Create(in domain.PhoneCreate) (domain.Phone, error) {
	p := domain.Phone{ID: uuid.NewString(), Available: true, IsDeal: false}

	var ok bool
	if p.Name, ok = validate.Name(in.Name); !ok {
		return domain.Phone{}, invalid("name must be 1-200 characters")
	}
	if p.Brand, ok = validate.Brand(in.Brand); !ok {
		return domain.Phone{}, invalid("brand must be 1-100 characters")
	}
	if !validate.Price(in.Price) {
		return domain.Phone{}, invalid("price must be greater than zero")
	}
	p.Price = in.Price
	if p.Condition, ok = validate.Condition(in.Condition); !ok {
		return domain.Phone{}, invalid("condition must be Good, Like New or Excellent")
	}
	if p.Description, ok = validate.Description(in.Description); !ok {
		return domain.Phone{}, invalid("description must be at least 10 characters")
	}
	if !validate.Images(in.Images) {
		return domain.Phone{}, invalid("images must contain 1-6 URLs")
	}
	if p.Storage, ok = validate.Storage(in.Storage); !ok {
		return domain.Phone{}, invalid("storage must be 1-50 characters")
	}
	if in.Battery != nil {
		if !validate.Battery(*in.Battery) {
			return domain.Phone{}, invalid("battery must be at most 50 characters")
		}
		p.Battery = in.Battery
	}
	if in.Available != nil {
		p.Available = *in.Available
	}
	if in.IsDeal != nil {
		p.IsDeal = *in.IsDeal
	}

	imagesJSON, err := domain.EncodeImages(in.Images)
	if err != nil {
		return domain.Phone{}, err
	}
	p.ImagesJSON = imagesJSON

	if err := s.Phones.Insert(p); err != nil {
		return domain.Phone{}, err
	}
	return s.Get(p.ID)
}

// Update applies a sparse patch. The existence check runs before the
// empty-patch check so a bad id always reports not-found first.
func (s *PhoneService) Update(id string, patch domain.PhonePatch) (domain.Phone, error) {
	if _, err := s.Get(id); err != nil {
		return domain.Phone{}, err
	}
	if patch.Empty() {
		return domain.Phone{}, ErrNoFields
	}

	set, err := patchColumns(patch)
	if err != nil {
		return domain.Phone{}, err
	}
	if err := s.Phones.Update(id, set); err != nil {
		return domain.Phone{}, err
	}
	return s.Get(id)
}

// MarkSold forces available=false regardless of the current value, so
// re-marking a sold listing succeeds.
func (s *PhoneService) MarkSold(id string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Phones.Update(id, map[string]any{"available": false})
}

func patchColumns(patch domain.PhonePatch) (map[string]any, error) {
	set := map[string]any{}
	if patch.Name != nil {
		v, ok := validate.Name(*patch.Name)
		if !ok {
			return nil, invalid("name must be 1-200 characters")
		}
		set["name"] = v
	}
	if patch.Brand != nil {
		v, ok := validate.Brand(*patch.Brand)
		if !ok {
			return nil, invalid("brand must be 1-100 characters")
		}
		set["brand"] = v
	}
	if patch.Price != nil {
		if !validate.Price(*patch.Price) {
			return nil, invalid("price must be greater than zero")
		}
		set["price"] = *patch.Price
	}
	if patch.Condition != nil {
		v, ok := validate.Condition(*patch.Condition)
		if !ok {
			return nil, invalid("condition must be Good, Like New or Excellent")
		}
		set["condition"] = v
	}
	if patch.Description != nil {
		v, ok := validate.Description(*patch.Description)
		if !ok {
			return nil, invalid("description must be at least 10 characters")
		}
		set["description"] = v
	}
	if patch.Images != nil {
		if !validate.Images(*patch.Images) {
			return nil, invalid("images must contain 1-6 URLs")
		}
		imagesJSON, err := domain.EncodeImages(*patch.Images)
		if err != nil {
			return nil, err
		}
		set["images_json"] = imagesJSON
	}
	if patch.Storage != nil {
		v, ok := validate.Storage(*patch.Storage)
		if !ok {
			return nil, invalid("storage must be 1-50 characters")
		}
		set["storage"] = v
	}
	if patch.Battery != nil {
		if !validate.Battery(*patch.Battery) {
			return nil, invalid("battery must be at most 50 characters")
		}
		set["battery"] = *patch.Battery
	}
	if patch.Available != nil {
		set["available"] = *patch.Available
	}
	if patch.IsDeal != nil {
		set["is_deal"] = *patch.IsDeal
	}
	return set, nil
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalid, msg)
}
