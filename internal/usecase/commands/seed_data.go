package commands

import (
	"elite-drive/internal/domain/car"
	"elite-drive/internal/domain/customer"
)

type seedCar struct {
	brand    string
	model    string
	year     int
	price    float64
	specs    car.Specs
	category car.Category
}

var seedCars = []seedCar{
	{"Ferrari", "SF90 Stradale", 2024, 625000, car.Specs{"hp": 986, "engine": "V8 Hybrid"}, car.CategorySupercar},
	{"Lamborghini", "Revuelto", 2024, 608000, car.Specs{"hp": 1001, "engine": "V12 Hybrid"}, car.CategorySupercar},
	{"Porsche", "911 GT3 RS", 2024, 241300, car.Specs{"hp": 518, "engine": "4.0L Flat-6"}, car.CategoryGT},
	{"Aston Martin", "Valhalla", 2025, 800000, car.Specs{"hp": 937, "engine": "V8 Hybrid"}, car.CategorySupercar},
	{"Tesla", "Model S Plaid", 2024, 108990, car.Specs{"hp": 1020, "engine": "Electric Tri-Motor"}, car.CategorySedan},
	{"Rolls-Royce", "Spectre", 2024, 420000, car.Specs{"hp": 577, "engine": "Electric"}, car.CategoryLuxury},
	{"Bentley", "Continental GT Speed", 2024, 302000, car.Specs{"hp": 650, "engine": "W12"}, car.CategoryGT},
	{"Mercedes-AMG", "ONE", 2023, 2720000, car.Specs{"hp": 1049, "engine": "V6 Hybrid F1"}, car.CategoryHypercar},
	{"Bugatti", "Chiron Super Sport", 2023, 3825000, car.Specs{"hp": 1578, "engine": "W16 Quad-Turbo"}, car.CategoryHypercar},
	{"Pagani", "Utopia", 2024, 2190000, car.Specs{"hp": 852, "engine": "V12 Twin-Turbo"}, car.CategoryHypercar},
}

type seedCustomer struct {
	name  string
	phone string
	tier  customer.LoyaltyTier
}

var seedCustomers = []seedCustomer{
	{"Avi Levi", "+972-50-1234567", customer.TierVIP},
	{"Noa Mizrahi", "+972-52-7654321", customer.TierPlatinum},
	{"Eyal Biton", "+972-54-1112223", customer.TierGold},
	{"Yael Ashkenazi", "+972-50-9988776", customer.TierVIP},
	{"Omer Cohen", "+972-53-4455667", customer.TierPlatinum},
}

const seedServiceDescription = "Routine Maintenance"
