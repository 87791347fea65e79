// Package memory implementa los puertos de repositorio sobre memoria de
// proceso. El estado vive lo que vive el proceso: se siembra una vez al
// inicio desde data estática, nunca se persiste y se reinicia con cada
// arranque.
package memory

import "github.com/jhoicas/supplysight-api/internal/domain/entity"

// SeedWarehouses devuelve las bodegas de referencia.
func SeedWarehouses() []entity.Warehouse {
	return []entity.Warehouse{
		{Code: "BLR-A", Name: "Bangalore Warehouse A", City: "Bangalore", Country: "India"},
		{Code: "PNQ-C", Name: "Pune Warehouse C", City: "Pune", Country: "India"},
		{Code: "DEL-B", Name: "Delhi Warehouse B", City: "Delhi", Country: "India"},
		{Code: "MUM-D", Name: "Mumbai Warehouse D", City: "Mumbai", Country: "India"},
	}
}

// SeedProducts devuelve el catálogo inicial de productos.
func SeedProducts() []entity.Product {
	return []entity.Product{
		{ID: "P-1001", Name: "12mm Hex Bolt", SKU: "HEX-12-100", Warehouse: "BLR-A", Stock: 180, Demand: 120},
		{ID: "P-1002", Name: "Steel Washer", SKU: "WSR-08-500", Warehouse: "BLR-A", Stock: 50, Demand: 80},
		{ID: "P-1003", Name: "M8 Nut", SKU: "NUT-08-200", Warehouse: "PNQ-C", Stock: 80, Demand: 80},
		{ID: "P-1004", Name: "Bearing 608ZZ", SKU: "BRG-608-50", Warehouse: "DEL-B", Stock: 24, Demand: 120},
		{ID: "P-1005", Name: "Allen Key 6mm", SKU: "ALN-06-25", Warehouse: "MUM-D", Stock: 200, Demand: 150},
		{ID: "P-1006", Name: "Spring Steel Strip", SKU: "SPR-12-100", Warehouse: "BLR-A", Stock: 30, Demand: 45},
		{ID: "P-1007", Name: "O-Ring 25mm", SKU: "ORG-25-200", Warehouse: "PNQ-C", Stock: 150, Demand: 100},
		{ID: "P-1008", Name: "Copper Wire 2.5mm", SKU: "CWR-25-500", Warehouse: "DEL-B", Stock: 75, Demand: 90},
		{ID: "P-1009", Name: "Rubber Gasket", SKU: "RGS-40-150", Warehouse: "MUM-D", Stock: 100, Demand: 100},
		{ID: "P-1010", Name: "Stainless Bolt M10", SKU: "SSB-10-200", Warehouse: "BLR-A", Stock: 45, Demand: 200},
	}
}
