package karte

import "strings"

// ServiceMenus lists the treatments offered on the visit form, in display
// order. "その他" is the catch-all.
var ServiceMenus = []string{
	"痩身施術",
	"ボディマッサージ",
	"リンパドレナージュ",
	"キャビテーション",
	"RF・ラジオ波",
	"EMS",
	"ハイフ",
	"セルライト除去",
	"脂肪燃焼マッサージ",
	"その他",
}

func IsKnownServiceMenu(menu string) bool {
	menu = strings.TrimSpace(menu)
	for _, m := range ServiceMenus {
		if m == menu {
			return true
		}
	}
	return false
}
