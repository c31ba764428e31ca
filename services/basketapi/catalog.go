package basketapi

import "fmt"

const imageBaseURL = "https://static.shopfrontend.example.com/img"

var catalog = []Product{
	{ID: 1, Title: "Hockey stick", Price: 19000},
	{ID: 2, Title: "Hockey shoes", Price: 12000},
	{ID: 3, Title: "Jogging pants", Price: 6000},
	{ID: 4, Title: "Sweat shirt", Price: 7000},
	{ID: 5, Title: "Hoody", Price: 8000},
	{ID: 6, Title: "Tennis racket", Price: 16900},
	{ID: 7, Title: "Tennis balls", Price: 1000},
	{ID: 8, Title: "Tennis shoes", Price: 12000},
	{ID: 9, Title: "Running shoes", Price: 12000},
	{ID: 10, Title: "Running shirt", Price: 5000},
	{ID: 11, Title: "Running shorts", Price: 4000},
	{ID: 12, Title: "Running socks", Price: 1000},
	{ID: 13, Title: "Running cap", Price: 2000},
}

func init() {
	for i := range catalog {
		catalog[i].ImageURL = fmt.Sprintf("%s/%d.jpg", imageBaseURL, catalog[i].ID)
	}
}

func findProduct(productID int) (Product, bool) {
	for _, p := range catalog {
		if p.ID == productID {
			return p, true
		}
	}
	return Product{}, false
}

func calculateTotalPrice(lines []BasketLine) int {
	var totalPrice int
	for _, l := range lines {
		p, found := findProduct(l.ProductID)
		if found {
			totalPrice += p.Price * l.Quantity
		}
	}
	return totalPrice
}

func toItemResponses(lines []BasketLine) []itemResponse {
	items := make([]itemResponse, 0, len(lines))
	for _, l := range lines {
		p, found := findProduct(l.ProductID)
		if !found {
			continue
		}
		items = append(items, itemResponse{
			Product: productResponse{
				ID:    p.ID,
				Title: p.Title,
				Price: p.Price,
				Image: imageResponse{File: fileResponse{URL: p.ImageURL}},
			},
			Quantity: l.Quantity,
		})
	}
	return items
}
