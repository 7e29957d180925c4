package productcontroller

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/daraghmehsaleh9-dot/Saleh/models"
)

// SeedCatalog inserts the starter chocolate-bomb catalog when the products
// table is empty. Safe to call on every boot.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	products := []models.Product{
		{
			EName: "Classic Milk Chocolate Bomb", ARName: "قنبلة شوكولاتة الحليب الكلاسيكية",
			ECategory: "Milk", ARCategory: "حليب",
			EDescription:  "Creamy milk chocolate shell hiding mini marshmallows and cocoa mix.",
			ARDescription: "قشرة شوكولاتة حليب كريمية تخفي مارشميلو صغير ومزيج كاكاو.",
			Price:         25, Featured: true,
		},
		{
			EName: "Dark Truffle Bomb", ARName: "قنبلة الترافل الداكنة",
			ECategory: "Dark", ARCategory: "داكنة",
			EDescription:  "70% dark chocolate with a molten truffle core.",
			ARDescription: "شوكولاتة داكنة ٧٠٪ بقلب ترافل ذائب.",
			Price:         32, Featured: true,
		},
		{
			EName: "Ruby Rose Bomb", ARName: "قنبلة روبي بالورد",
			ECategory: "Ruby", ARCategory: "روبي",
			EDescription:  "Ruby chocolate with candied rose petals and pistachio dust.",
			ARDescription: "شوكولاتة روبي مع بتلات ورد مسكرة ورذاذ فستق.",
			Price:         38,
		},
		{
			EName: "Salted Caramel Bomb", ARName: "قنبلة الكراميل المملح",
			ECategory: "Caramel", ARCategory: "كراميل",
			EDescription:  "Milk chocolate shell, gooey salted caramel center.",
			ARDescription: "قشرة شوكولاتة حليب وقلب كراميل مملح سائل.",
			Price:         28, Featured: true,
		},
		{
			EName: "White Berry Bomb", ARName: "قنبلة التوت البيضاء",
			ECategory: "White", ARCategory: "بيضاء",
			EDescription:  "White chocolate with freeze-dried berries and vanilla.",
			ARDescription: "شوكولاتة بيضاء مع توت مجفف وفانيليا.",
			Price:         27,
		},
		{
			EName: "Hazelnut Crunch Bomb", ARName: "قنبلة البندق المقرمشة",
			ECategory: "Nuts", ARCategory: "مكسرات",
			EDescription:  "Gianduja chocolate loaded with roasted hazelnut pieces.",
			ARDescription: "شوكولاتة جاندويا محملة بقطع البندق المحمص.",
			Price:         30,
		},
		{
			EName: "Arabic Coffee Bomb", ARName: "قنبلة القهوة العربية",
			ECategory: "Coffee", ARCategory: "قهوة",
			EDescription:  "Dark chocolate infused with cardamom and Arabic coffee.",
			ARDescription: "شوكولاتة داكنة منقوعة بالهيل والقهوة العربية.",
			Price:         33,
		},
		{
			EName: "Kids Party Bomb", ARName: "قنبلة حفلة الأطفال",
			ECategory: "Milk", ARCategory: "حليب",
			EDescription:  "Milk chocolate packed with rainbow sprinkles and candy.",
			ARDescription: "شوكولاتة حليب مليئة برشات الألوان والحلوى.",
			Price:         22,
		},
	}
	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("seed products: %w", err)
	}

	brands := []models.Brand{
		{Name: "Choco-Bomb Originals"},
		{Name: "Cacao Atelier"},
		{Name: "Desert Gold Cocoa"},
	}
	if err := db.Create(&brands).Error; err != nil {
		return fmt.Errorf("seed brands: %w", err)
	}
	return nil
}
