package basketapi

import "time"

type Product struct {
	ID       int
	Title    string
	Price    int
	ImageURL string
}

type BasketLine struct {
	ProductID int
	Quantity  int
}

type Basket struct {
	AccessKey    string
	CreatedAt    time.Time
	LastModified *time.Time
	Lines        []BasketLine
}

func (b *Basket) lineIndex(productID int) int {
	for i, l := range b.Lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

type Order struct {
	ID         string
	AccessKey  string
	CreatedAt  time.Time
	Name       string
	Address    string
	Phone      string
	Email      string
	Comment    string `datastore:",noindex"`
	Lines      []BasketLine
	TotalPrice int
}

// Below: the json wire format of the basket api.

type basketQuery struct {
	UserAccessKey string `form:"userAccessKey"`
}

type fileResponse struct {
	URL string `json:"url"`
}

type imageResponse struct {
	File fileResponse `json:"file"`
}

type productResponse struct {
	ID    int           `json:"id"`
	Title string        `json:"title"`
	Price int           `json:"price"`
	Image imageResponse `json:"image"`
}

type itemResponse struct {
	Product  productResponse `json:"product"`
	Quantity int             `json:"quantity"`
}

type userResponse struct {
	AccessKey string `json:"accessKey"`
}

type basketResponse struct {
	User  userResponse   `json:"user"`
	Items []itemResponse `json:"items"`
}

type itemsResponse struct {
	Items []itemResponse `json:"items"`
}

type productRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type orderRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Comment string `json:"comment"`
}

type orderBasketResponse struct {
	Items []itemResponse `json:"items"`
}

type orderResponse struct {
	ID         string              `json:"id"`
	Name       string              `json:"name"`
	Address    string              `json:"address"`
	Phone      string              `json:"phone"`
	Email      string              `json:"email"`
	Comment    string              `json:"comment"`
	Basket     orderBasketResponse `json:"basket"`
	TotalPrice int                 `json:"totalPrice"`
}

type ordersResponse struct {
	Orders []orderResponse `json:"orders"`
}
