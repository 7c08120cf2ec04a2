package main

import (
	"time"

	"github.com/Danilo019/Projeto-shopee-cart-system/internal/domain"
)

// defaultProducts populates an empty catalog on first run.
func defaultProducts() []*domain.Product {
	return []*domain.Product{
		{Name: "Wireless Headphones", Description: "Bluetooth 5.3, 30h battery", Category: "Electronics", Price: 199.90, Stock: 25, Rating: 4.6, DiscountPercent: 10},
		{Name: "USB-C Cable 2m", Description: "Braided, 60W", Category: "Electronics", Price: 29.90, Stock: 120, Rating: 4.8},
		{Name: "Mechanical Keyboard", Description: "Hot-swappable, brown switches", Category: "Electronics", Price: 349.00, Stock: 12, Rating: 4.7, DiscountPercent: 15},
		{Name: "Stainless Water Bottle", Description: "750ml, vacuum insulated", Category: "Home", Price: 79.90, Stock: 40, Rating: 4.4},
		{Name: "Yoga Mat", Description: "6mm, non-slip", Category: "Sports", Price: 99.90, Stock: 30, Rating: 4.2, DiscountPercent: 20},
		{Name: "Desk Lamp", Description: "LED, 3 color temperatures", Category: "Home", Price: 129.90, Stock: 18, Rating: 4.5},
		{Name: "Running Shoes", Description: "Lightweight trainer", Category: "Sports", Price: 299.90, Stock: 15, Rating: 4.3, DiscountPercent: 5},
		{Name: "Backpack 20L", Description: "Water resistant, laptop sleeve", Category: "Accessories", Price: 159.90, Stock: 22, Rating: 4.6},
	}
}

// defaultCoupons populates an empty coupon store on first run.
func defaultCoupons() []*domain.Coupon {
	nextMonth := time.Now().AddDate(0, 1, 0)
	return []*domain.Coupon{
		{Code: "WELCOME10", Type: domain.CouponPercentage, Value: 10, MinimumAmount: 50, Active: true, CreatedAt: time.Now()},
		{Code: "SAVE20", Type: domain.CouponFixed, Value: 20, MinimumAmount: 100, Active: true, CreatedAt: time.Now()},
		{Code: "FLASH25", Type: domain.CouponPercentage, Value: 25, MinimumAmount: 200, ExpiresAt: &nextMonth, UsageLimit: 50, Active: true, CreatedAt: time.Now()},
	}
}
