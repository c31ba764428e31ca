package basketevents

const (
	TopicName = "basket"
)

type BasketCreated struct {
	AccessKey string
}

func (e BasketCreated) GetEventTypeName() string {
	return TopicName + ".created"
}

func (e BasketCreated) GetAggregateName() string {
	return e.AccessKey
}

type BasketProductAdded struct {
	AccessKey string
	ProductID int
	Quantity  int
}

func (e BasketProductAdded) GetEventTypeName() string {
	return TopicName + ".productAdded"
}

func (e BasketProductAdded) GetAggregateName() string {
	return e.AccessKey
}

type BasketProductUpdated struct {
	AccessKey string
	ProductID int
	Quantity  int
}

func (e BasketProductUpdated) GetEventTypeName() string {
	return TopicName + ".productUpdated"
}

func (e BasketProductUpdated) GetAggregateName() string {
	return e.AccessKey
}

type BasketProductDeleted struct {
	AccessKey string
	ProductID int
}

func (e BasketProductDeleted) GetEventTypeName() string {
	return TopicName + ".productDeleted"
}

func (e BasketProductDeleted) GetAggregateName() string {
	return e.AccessKey
}

type OrderPlaced struct {
	AccessKey  string
	OrderID    string
	TotalPrice int
}

func (e OrderPlaced) GetEventTypeName() string {
	return TopicName + ".orderPlaced"
}

func (e OrderPlaced) GetAggregateName() string {
	return e.AccessKey
}
