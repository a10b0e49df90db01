package catalog

import "ecoskip/models"

func money(p int64) *models.Money {
	m := models.Pounds(p)
	return &m
}

func defaultSkips() []models.SkipOffering {
	return []models.SkipOffering{
		{ID: 17933, Size: 4, HirePeriodDays: 14, PriceBeforeVAT: models.Pounds(278), VAT: 20, Postcode: "NR32",
			CreatedAt: "2025-04-03T13:51:46.897146", UpdatedAt: "2025-04-07T13:16:52.813", AllowedOnRoad: true, AllowsHeavyWaste: true},
		{ID: 17934, Size: 6, HirePeriodDays: 14, PriceBeforeVAT: models.Pounds(305), VAT: 20, Postcode: "NR32",
			CreatedAt: "2025-04-03T13:51:46.897146", UpdatedAt: "2025-04-07T13:16:52.992", AllowedOnRoad: true, AllowsHeavyWaste: true},
		{ID: 17935, Size: 8, HirePeriodDays: 14, PriceBeforeVAT: models.Pounds(375), VAT: 20, Postcode: "NR32",
			CreatedAt: "2025-04-03T13:51:46.897146", UpdatedAt: "2025-04-07T13:16:53.171", AllowedOnRoad: true, AllowsHeavyWaste: true},
		{ID: 17936, Size: 10, HirePeriodDays: 14, PriceBeforeVAT: models.Pounds(400), VAT: 20, Postcode: "NR32",
			CreatedAt: "2025-04-03T13:51:46.897146", UpdatedAt: "2025-04-07T13:16:53.339"},
		{ID: 17937, Size: 12, HirePeriodDays: 14, PriceBeforeVAT: models.Pounds(439), VAT: 20, Postcode: "NR32",
			CreatedAt: "2025-04-03T13:51:46.897146", UpdatedAt: "2025-04-07T13:16:53.516"},
		{ID: 17938, Size: 14, HirePeriodDays: 14, PriceBeforeVAT: models.Pounds(470), VAT: 20, Postcode: "NR32",
			CreatedAt: "2025-04-03T13:51:46.897146", UpdatedAt: "2025-04-07T13:16:53.69"},
		{ID: 17939, Size: 16, HirePeriodDays: 14, PriceBeforeVAT: models.Pounds(496), VAT: 20, Postcode: "NR32",
			CreatedAt: "2025-04-03T13:51:46.897146", UpdatedAt: "2025-04-07T13:16:53.876"},
		{ID: 15124, Size: 20, HirePeriodDays: 14, TransportCost: money(248), PerTonneCost: money(248), PriceBeforeVAT: models.Pounds(992), VAT: 20, Postcode: "NR32",
			CreatedAt: "2025-04-03T13:51:40.344435", UpdatedAt: "2025-04-07T13:16:52.434", AllowsHeavyWaste: true},
		{ID: 15125, Size: 40, HirePeriodDays: 14, TransportCost: money(248), PerTonneCost: money(248), PriceBeforeVAT: models.Pounds(992), VAT: 20, Postcode: "NR32",
			CreatedAt: "2025-04-03T13:51:40.344435", UpdatedAt: "2025-04-07T13:16:52.603"},
	}
}

func defaultWasteTypes() []models.WasteType {
	return []models.WasteType{
		{ID: "construction", Name: "Construction Waste", Description: "Building materials and renovation debris."},
		{ID: "household", Name: "Household Waste", Description: "General household items and furniture."},
		{ID: "garden", Name: "Garden Waste", Description: "Green waste and landscaping materials"},
		{ID: "commercial", Name: "Commercial Waste", Description: "Business and office clearance"},
	}
}
