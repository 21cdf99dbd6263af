package catalog

import "github.com/jay10z/it-equipment-ordering-system/internal/domain"

// Catalog categories. The fallback dataset covers every one of them so the
// whole UI stays demonstrable with no backend.
const (
	CategoryComputers   = "Computers"
	CategoryNetworking  = "Networking"
	CategoryAccessories = "Accessories"
	CategoryStorage     = "Storage"
)

// Categories lists all catalog categories in display order.
func Categories() []string {
	return []string{CategoryComputers, CategoryNetworking, CategoryAccessories, CategoryStorage}
}

// Fallback returns the fixed reference catalog used when the remote source
// is unreachable. Prices are in FCFA.
func Fallback() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "Dell Latitude 5420", Category: CategoryComputers, Price: 450000, Availability: domain.AvailabilityInStock, Warranty: "12 months", Specs: `14" FHD, Intel i5-1135G7, 8GB RAM, 256GB SSD`},
		{ID: 2, Name: "HP ProBook 450 G8", Category: CategoryComputers, Price: 520000, Availability: domain.AvailabilityInStock, Warranty: "12 months", Specs: `15.6" FHD, Intel i7-1165G7, 16GB RAM, 512GB SSD`},
		{ID: 3, Name: "Lenovo ThinkPad T14", Category: CategoryComputers, Price: 480000, Availability: domain.AvailabilityLimited, Warranty: "12 months", Specs: `14" FHD, AMD Ryzen 5, 8GB RAM, 256GB SSD`},
		{ID: 4, Name: "Cisco Small Business Router", Category: CategoryNetworking, Price: 95000, Availability: domain.AvailabilityInStock, Warranty: "24 months", Specs: "Dual-band, 5 Gigabit ports, VPN support"},
		{ID: 5, Name: "TP-Link 24-Port Switch", Category: CategoryNetworking, Price: 120000, Availability: domain.AvailabilityInStock, Warranty: "36 months", Specs: "10/100/1000 Mbps, Rackmount, Unmanaged"},
		{ID: 6, Name: "Ubiquiti UniFi AP AC Pro", Category: CategoryNetworking, Price: 85000, Availability: domain.AvailabilityInStock, Warranty: "12 months", Specs: "Dual-band WiFi, PoE, up to 450 Mbps"},
		{ID: 7, Name: "Logitech MX Master 3", Category: CategoryAccessories, Price: 35000, Availability: domain.AvailabilityInStock, Warranty: "12 months", Specs: "Wireless Mouse, 7 buttons, 4000 DPI"},
		{ID: 8, Name: "Logitech MX Keys", Category: CategoryAccessories, Price: 45000, Availability: domain.AvailabilityInStock, Warranty: "12 months", Specs: "Wireless Keyboard, Backlit, USB-C charging"},
		{ID: 9, Name: "HDMI Cable 2m", Category: CategoryAccessories, Price: 3500, Availability: domain.AvailabilityInStock, Warranty: "6 months", Specs: "4K support, High speed, Gold plated"},
		{ID: 10, Name: "Seagate Backup Plus 2TB", Category: CategoryStorage, Price: 45000, Availability: domain.AvailabilityInStock, Warranty: "24 months", Specs: "External HDD, USB 3.0, Portable"},
		{ID: 11, Name: "Samsung T7 SSD 1TB", Category: CategoryStorage, Price: 95000, Availability: domain.AvailabilityInStock, Warranty: "36 months", Specs: "External SSD, USB 3.2, 1050 MB/s read"},
		{ID: 12, Name: "SanDisk Ultra 128GB USB", Category: CategoryStorage, Price: 7500, Availability: domain.AvailabilityInStock, Warranty: "12 months", Specs: "USB 3.0, 130 MB/s read speed"},
	}
}
