package service

import (
	"errors"

	"github.com/Danilo019/Projeto-shopee-cart-system/internal/catalog"
)

var errStorageBroken = errors.New("storage broken")

// flakyCatalog delegates to a real store but fails the stock commit for one
// product id, to exercise the non-rolled-back checkout window.
type flakyCatalog struct {
	catalog.Store
	failID int64
}

func (c *flakyCatalog) ReduceStock(id int64, quantity int) error {
	if id == c.failID {
		return errStorageBroken
	}
	return c.Store.ReduceStock(id, quantity)
}
