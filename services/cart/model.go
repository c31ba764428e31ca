package cart

import "strconv"

// AccessKeyName is the key under which the access key is persisted.
const AccessKeyName = "userAccessKey"

type ProductID int

func (id ProductID) String() string {
	return strconv.Itoa(int(id))
}

type Product struct {
	ID    ProductID `json:"id"`
	Title string    `json:"title"`
	Price int       `json:"price"`
	Image ImageRef  `json:"image"`
}

type ImageRef struct {
	File FileRef `json:"file"`
}

type FileRef struct {
	URL string `json:"url"`
}

// BasketItem is one line of the server snapshot.
type BasketItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type User struct {
	AccessKey string `json:"accessKey"`
}

type BasketResponse struct {
	User  User         `json:"user"`
	Items []BasketItem `json:"items"`
}

type ItemsResponse struct {
	Items []BasketItem `json:"items"`
}

// CartLineRef is the local, lightweight view of a cart line.
type CartLineRef struct {
	ProductID ProductID
	Amount    int
}

// ProductDetail is a Product with its image reference flattened to a url.
type ProductDetail struct {
	ID    ProductID
	Title string
	Price int
	Image string
}

type CartDetailProduct struct {
	ProductID ProductID
	Amount    int
	Product   ProductDetail
}

func (p CartDetailProduct) TotalPrice() int {
	return p.Product.Price * p.Amount
}

type OrderRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Comment string `json:"comment"`
}

type OrderBasket struct {
	Items []BasketItem `json:"items"`
}

type OrderInfo struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Address    string      `json:"address"`
	Phone      string      `json:"phone"`
	Email      string      `json:"email"`
	Comment    string      `json:"comment"`
	Basket     OrderBasket `json:"basket"`
	TotalPrice int         `json:"totalPrice"`
}
