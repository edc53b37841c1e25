package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Merchants() MerchantRepository
	Events() EventRepository
	Windows() PickupWindowRepository
	Locations() LocationRepository
	MenuItems() MenuItemRepository
}
