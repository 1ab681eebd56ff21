package models

// PageID identifies one back-office page. The set is closed: every id the
// sidebar can emit has an entry in pageRegistry, and anything else resolves
// to the dashboard.
type PageID string

const (
	PageDashboard     PageID = "dashboard"
	PageProducts      PageID = "products"
	PageProductUpload PageID = "product-upload"
	PageOrders        PageID = "orders"
	PageCustomers     PageID = "customers"
	PageReports       PageID = "reports"
	PageMarketing     PageID = "marketing"
	PageInfluencer    PageID = "brand-influencer"
	PageSettings      PageID = "settings"

	// Placeholder pages: listed in the menu, served with metadata only.
	PageCashFlow         PageID = "finance-cashflow"
	PageChatBot          PageID = "chatbot"
	PageMessages         PageID = "messages"
	PageNotifications    PageID = "notifications"
	PageStockTracking    PageID = "products-stock"
	PageBarcodes         PageID = "products-barcode"
	PageProfitability    PageID = "products-profit"
	PageReturns          PageID = "orders-returns"
	PageAbandonedCarts   PageID = "orders-abandoned"
	PagePurchaseHistory  PageID = "customers-history"
	PageDiscounts        PageID = "marketing-discounts"
	PageCampaigns        PageID = "marketing-campaigns"
	PageCoupons          PageID = "marketing-coupons"
	PageGiftCards        PageID = "marketing-giftcard"
	PageBulkSMS          PageID = "marketing-sms"
	PageSEO              PageID = "advertising-seo"
	PageSalesChannels    PageID = "sales-channels"
	PageBrandIdentity    PageID = "brand-identity"
	PageBrandAwareness   PageID = "brand-awareness"
)

// PageInfo is the static metadata served for a page id.
type PageInfo struct {
	ID          PageID `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Implemented bool   `json:"implemented"`
}

var pageRegistry = map[PageID]PageInfo{
	PageDashboard:     {PageDashboard, "Kontrol Paneli", "Genel bakış ve temel metrikler", true},
	PageProducts:      {PageProducts, "Ürünler", "Ürün kataloğu yönetimi", true},
	PageProductUpload: {PageProductUpload, "Ürün Yükle", "AI destekli ürün içerik sihirbazı", true},
	PageOrders:        {PageOrders, "Siparişler", "Sipariş takibi ve durum yönetimi", true},
	PageCustomers:     {PageCustomers, "Müşteriler", "Müşteri kayıtları", true},
	PageReports:       {PageReports, "Raporlar", "Satış ve performans raporları", true},
	PageMarketing:     {PageMarketing, "Pazarlama", "Kampanya görüntüleme", true},
	PageInfluencer:    {PageInfluencer, "Influencer Oluşturma ve Yönetme", "Sanal marka yüzü yönetimi", true},
	PageSettings:      {PageSettings, "Ayarlar", "Hesap ve uygulama ayarları", true},

	PageCashFlow:        {PageCashFlow, "Nakit Akışı", "Detaylı nakit akışı analizi", false},
	PageChatBot:         {PageChatBot, "Chat Bot", "Müşteri destek bot yönetimi", false},
	PageMessages:        {PageMessages, "Mesajlar", "Tüm mesajlarınızı görüntüleyin", false},
	PageNotifications:   {PageNotifications, "Bildirimler", "Sistem bildirimleri", false},
	PageStockTracking:   {PageStockTracking, "Stok Takibi", "Ürün stok durumlarını görüntüleyin", false},
	PageBarcodes:        {PageBarcodes, "Ürün Barkot", "Barkod yönetimi", false},
	PageProfitability:   {PageProfitability, "Ürün Karlılık Analizi", "", false},
	PageReturns:         {PageReturns, "İadeler", "", false},
	PageAbandonedCarts:  {PageAbandonedCarts, "Terk Edilmiş Sepetler", "", false},
	PagePurchaseHistory: {PagePurchaseHistory, "Satın Alma Geçmişi", "", false},
	PageDiscounts:       {PageDiscounts, "İndirimler", "", false},
	PageCampaigns:       {PageCampaigns, "Kampanyalar", "", false},
	PageCoupons:         {PageCoupons, "Kupon Yönetimi", "", false},
	PageGiftCards:       {PageGiftCards, "Hediye Kartları", "", false},
	PageBulkSMS:         {PageBulkSMS, "Toplu SMS Gönderimi", "", false},
	PageSEO:             {PageSEO, "SEO Genel Ayarlar", "", false},
	PageSalesChannels:   {PageSalesChannels, "Satış Kanalları", "", false},
	PageBrandIdentity:   {PageBrandIdentity, "Marka Kimliği", "", false},
	PageBrandAwareness:  {PageBrandAwareness, "Marka Bilinirliği", "", false},
}

// ResolvePage looks up a page id. Unknown ids fall back to the dashboard so
// the shell always has something to render.
func ResolvePage(id string) PageInfo {
	if info, ok := pageRegistry[PageID(id)]; ok {
		return info
	}
	return pageRegistry[PageDashboard]
}

// AllPages returns the full registry as a slice (order unspecified).
func AllPages() []PageInfo {
	pages := make([]PageInfo, 0, len(pageRegistry))
	for _, info := range pageRegistry {
		pages = append(pages, info)
	}
	return pages
}

// MenuSection is one sidebar group.
type MenuSection struct {
	Title string     `json:"title"`
	Items []PageInfo `json:"items"`
}

// Menu returns the static sidebar tree.
func Menu() []MenuSection {
	section := func(title string, ids ...PageID) MenuSection {
		items := make([]PageInfo, 0, len(ids))
		for _, id := range ids {
			items = append(items, pageRegistry[id])
		}
		return MenuSection{Title: title, Items: items}
	}
	return []MenuSection{
		section("Genel", PageDashboard, PageReports, PageNotifications, PageMessages),
		section("Ürünler", PageProducts, PageProductUpload, PageStockTracking, PageBarcodes, PageProfitability),
		section("Siparişler", PageOrders, PageReturns, PageAbandonedCarts),
		section("Müşteriler", PageCustomers, PagePurchaseHistory, PageChatBot),
		section("Pazarlama", PageMarketing, PageDiscounts, PageCampaigns, PageCoupons, PageGiftCards, PageBulkSMS),
		section("Marka", PageInfluencer, PageBrandIdentity, PageBrandAwareness),
		section("Finans", PageCashFlow),
		section("Diğer", PageSEO, PageSalesChannels, PageSettings),
	}
}
