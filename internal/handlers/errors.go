package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-karte/internal/auth"
	"github.com/BruksfildServices01/salon-karte/internal/httperr"
)

// businessMessages are the user-facing texts of known business codes.
var businessMessages = map[string]string{
	"name_required":        "名前を入力してください。",
	"invalid_email":        "メールアドレスの形式が正しくありません。",
	"invalid_email_domain": "メールアドレスのドメインが確認できません。",
	"password_required":    "パスワードを入力してください。",
	"staff_not_found":      "担当スタッフが見つかりません。",
	"client_not_found":     "顧客が見つかりません。",
	"client_required":      "顧客を選択してください。",
	"visit_not_found":      "来店記録が見つかりません。",
	"invalid_visit_date":   "来店日が正しくありません。",
	"invalid_service_menu": "施術メニューが正しくありません。",
	"invalid_measured_at":  "測定日が正しくありません。",
	"invalid_value":        "体重が正しくありません。",
	"value_out_of_range":   "体重は0〜300kgの範囲で入力してください。",
	"invalid_from":         "開始日が正しくありません。",
	"invalid_to":           "終了日が正しくありません。",
	"invalid_range":        "開始日は終了日より前にしてください。",
	"profile_not_found":    "プロフィールを取得できませんでした。再度ログインしてください。",
}

// writeError maps use case errors onto HTTP responses. Business codes
// ending in _not_found become 404, other business codes 400. Anything
// else is logged and reported as internal with fallbackCode.
func writeError(c *gin.Context, err error, fallbackCode string) {
	if auth.IsAuthError(err) {
		httperr.Unauthorized(c, "invalid_credentials", err.Error())
		return
	}

	if code, ok := httperr.BusinessCode(err); ok {
		msg := businessMessages[code]
		if msg == "" {
			msg = code
		}
		if strings.HasSuffix(code, "_not_found") {
			httperr.NotFound(c, code, msg)
			return
		}
		httperr.BadRequest(c, code, msg)
		return
	}

	log.Printf("%s: %v", fallbackCode, err)
	httperr.Write(c, http.StatusInternalServerError, fallbackCode, "サーバーエラーが発生しました。")
}

func invalidRequest(c *gin.Context, err error) {
	httperr.BadRequest(c, "invalid_request", "入力内容が正しくありません: "+err.Error())
}
