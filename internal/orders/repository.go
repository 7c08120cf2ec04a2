package orders

import (
	"errors"
	"fmt"

	"github.com/Danilo019/Projeto-shopee-cart-system/internal/domain"
	"github.com/Danilo019/Projeto-shopee-cart-system/internal/storage"
	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("order not found")

// Repository persists order records produced by checkout.
type Repository interface {
	Append(o *domain.Order) error
	Get(id uuid.UUID) (*domain.Order, error)
	List() []*domain.Order
	ListByUser(userID string) []*domain.Order
}

// FileRepository appends orders to an in-memory list and rewrites the
// backing JSON file after every append.
type FileRepository struct {
	col    *storage.Collection[*domain.Order]
	orders []*domain.Order
}

// Open loads order history from path. A missing file yields an empty
// history.
func Open(path string) (*FileRepository, error) {
	r := &FileRepository{
		col: storage.NewCollection[*domain.Order](path),
	}
	loaded, err := r.col.Load()
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	r.orders = loaded
	return r, nil
}

func (r *FileRepository) Append(o *domain.Order) error {
	r.orders = append(r.orders, o)
	if err := r.col.Save(r.orders); err != nil {
		// Keep memory and disk consistent: an order that failed to
		// persist is not part of history.
		r.orders = r.orders[:len(r.orders)-1]
		return err
	}
	return nil
}

func (r *FileRepository) Get(id uuid.UUID) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (r *FileRepository) List() []*domain.Order {
	out := make([]*domain.Order, len(r.orders))
	copy(out, r.orders)
	return out
}

func (r *FileRepository) ListByUser(userID string) []*domain.Order {
	var out []*domain.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}
