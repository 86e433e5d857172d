package domain

// CarMake is a vehicle manufacturer, the root of the reference hierarchy.
type CarMake struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CarModel belongs to a make.
type CarModel struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	MakeID int64  `json:"make_id"`
}

// CarYear is a production year of a model. (model_id, year) is unique.
type CarYear struct {
	ID      int64 `json:"id"`
	Year    int   `json:"year"`
	ModelID int64 `json:"model_id"`
}

// CarMakeInput represents make create/update data
type CarMakeInput struct {
	Name string `json:"name" validate:"required,max=255"`
}

// CarModelInput represents model create/update data
type CarModelInput struct {
	Name   string `json:"name" validate:"required,max=255"`
	MakeID int64  `json:"make_id" validate:"required,gt=0"`
}

// CarYearInput represents year create/update data
type CarYearInput struct {
	Year    int   `json:"year" validate:"required,gte=1900,lte=2100"`
	ModelID int64 `json:"model_id" validate:"required,gt=0"`
}
