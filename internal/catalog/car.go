package catalog

// CarType is the closed set of showroom categories.
type CarType string

const (
	TypeLuxury CarType = "luxury"
	TypeSports CarType = "sports"
	TypeSUV    CarType = "suv"

	// TypeAll is the filter sentinel for "no category restriction".
	// It is never stored on a record.
	TypeAll CarType = "all"
)

func (t CarType) Valid() bool {
	switch t {
	case TypeLuxury, TypeSports, TypeSUV:
		return true
	}
	return false
}

type Car struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Type         CarType `json:"type"`
	Price        int     `json:"price"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"imageUrl"`
	Horsepower   int     `json:"horsepower"`
	Acceleration string  `json:"acceleration"` // 0-60 mph time
	MPG          int     `json:"mpg"`
	Featured     bool    `json:"featured"`
}

// SeedCars returns the showroom inventory with ids assigned sequentially
// from 1. Ids are immutable; the catalog never changes after seeding.
func SeedCars() []Car {
	cars := []Car{
		{
			Name:         "Porsche 911 GT3",
			Type:         TypeSports,
			Price:        189500,
			Description:  "The perfect blend of performance and luxury. Experience the thrill of 502 HP and precision handling.",
			ImageURL:     "https://images.unsplash.com/photo-1580274455191-1c62238fa333?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500&q=80",
			Horsepower:   502,
			Acceleration: "3.2",
			MPG:          20,
			Featured:     true,
		},
		{
			Name:         "Audi R8",
			Type:         TypeSports,
			Price:        158700,
			Description:  "A masterpiece of German engineering with V10 power and quattro all-wheel drive for exceptional performance.",
			ImageURL:     "https://pixabay.com/get/g2e997bd53e086abf425560aa0f132008eb2312193e6b5ff3598c53cb3749617cc4184a543251876542c9dd886f299eba7825bcefc9105425341047fdc91f5cb8_1280.jpg",
			Horsepower:   562,
			Acceleration: "3.4",
			MPG:          17,
			Featured:     true,
		},
		{
			Name:         "Ferrari F8 Tributo",
			Type:         TypeSports,
			Price:        276000,
			Description:  "The epitome of Italian supercar design with breathtaking performance and unmistakable Ferrari character.",
			ImageURL:     "https://images.unsplash.com/photo-1618843479313-40f8afb4b4d8?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500&q=80",
			Horsepower:   710,
			Acceleration: "2.9",
			MPG:          16,
			Featured:     true,
		},
		{
			Name:         "Mercedes-Benz GLE Coupe",
			Type:         TypeSUV,
			Price:        92500,
			Description:  "Combines the elegance of a coupe with the presence of an SUV, offering unparalleled luxury and comfort.",
			ImageURL:     "https://images.unsplash.com/photo-1580273916550-e323be2ae537?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500&q=80",
			Horsepower:   429,
			Acceleration: "5.2",
			MPG:          22,
		},
		{
			Name:         "BMW M5 Competition",
			Type:         TypeLuxury,
			Price:        120900,
			Description:  "A luxury sedan with the heart of a supercar. Experience unmatched performance with everyday usability.",
			ImageURL:     "https://images.unsplash.com/photo-1616422285623-13ff0162193c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500&q=80",
			Horsepower:   617,
			Acceleration: "3.1",
			MPG:          17,
		},
		{
			Name:         "Lamborghini Huracan",
			Type:         TypeSports,
			Price:        208000,
			Description:  "The perfect combination of Italian design and explosive performance. An automotive icon in every sense.",
			ImageURL:     "https://images.unsplash.com/photo-1606016159991-dfe4f2746ad5?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500&q=80",
			Horsepower:   631,
			Acceleration: "2.8",
			MPG:          15,
			Featured:     true,
		},
		{
			Name:         "Bentley Continental GT",
			Type:         TypeLuxury,
			Price:        215000,
			Description:  "The ultimate grand tourer that combines exquisite craftsmanship with exhilarating performance.",
			ImageURL:     "https://images.unsplash.com/photo-1580274418392-25bdbaa52ecd?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500&q=80",
			Horsepower:   626,
			Acceleration: "3.6",
			MPG:          19,
		},
		{
			Name:         "Range Rover Autobiography",
			Type:         TypeSUV,
			Price:        152000,
			Description:  "The pinnacle of luxury SUVs, with extraordinary refinement, capability, and sophistication.",
			ImageURL:     "https://images.unsplash.com/photo-1536149247585-1b9f5099c9a3?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=500&q=80",
			Horsepower:   518,
			Acceleration: "5.1",
			MPG:          18,
		},
	}

	for i := range cars {
		cars[i].ID = i + 1
	}
	return cars
}
