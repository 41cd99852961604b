package checkout

import (
	"fmt"

	"golang.org/x/text/language"
)

type Code string

const (
	CodeIncomplete         Code = "incomplete"
	CodeWrongStep          Code = "wrong_step"
	CodeEmailLocked        Code = "email_locked"
	CodeInvalidEmail       Code = "invalid_email"
	CodeInvalidAddress     Code = "invalid_address"
	CodeLoginRequired      Code = "login_required"
	CodeOutOfStock         Code = "out_of_stock"
	CodeAmountBelowMinimum Code = "amount_below_minimum"
	CodeNetwork            Code = "network"
	CodeVerifyFailed       Code = "verify_failed"
	CodeCancelled          Code = "cancelled"
	CodeNothingToVerify    Code = "nothing_to_verify"
	CodeServer             Code = "server"
)

// Error is shown to the customer. Message is already localized.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

var supported = []language.Tag{language.English, language.Persian}

var matcher = language.NewMatcher(supported)

// MatchLanguage picks the supported language closest to an Accept-Language
// style preference list such as "fa-IR,en;q=0.8".
func MatchLanguage(preference string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(preference)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, idx, _ := matcher.Match(tags...)
	return supported[idx]
}

var messages = map[language.Tag]map[Code]string{
	language.English: {
		CodeIncomplete:         "Please complete this step before continuing.",
		CodeWrongStep:          "This action is not available at the current step.",
		CodeEmailLocked:        "The email cannot be changed after continuing as a guest.",
		CodeInvalidEmail:       "Please enter a valid email address.",
		CodeInvalidAddress:     "Please provide a complete address.",
		CodeLoginRequired:      "Please log in to use saved addresses.",
		CodeOutOfStock:         "Some items in your cart are out of stock.",
		CodeAmountBelowMinimum: "The payment amount is below the gateway minimum.",
		CodeNetwork:            "Could not reach the server. Please try again.",
		CodeVerifyFailed:       "Payment verification failed (code %d).",
		CodeCancelled:          "Payment was cancelled.",
		CodeNothingToVerify:    "There is no payment to verify.",
		CodeServer:             "Something went wrong. Please try again.",
	},
	language.Persian: {
		CodeIncomplete:         "لطفاً اطلاعات این مرحله را کامل کنید.",
		CodeWrongStep:          "این عملیات در مرحله فعلی امکان‌پذیر نیست.",
		CodeEmailLocked:        "ایمیل پس از ادامه به عنوان مهمان قابل تغییر نیست.",
		CodeInvalidEmail:       "لطفاً یک ایمیل معتبر وارد کنید.",
		CodeInvalidAddress:     "لطفاً آدرس کامل را وارد کنید.",
		CodeLoginRequired:      "برای استفاده از آدرس‌های ذخیره‌شده وارد حساب کاربری شوید.",
		CodeOutOfStock:         "برخی از کالاهای سبد خرید شما موجود نیستند.",
		CodeAmountBelowMinimum: "مبلغ پرداخت کمتر از حداقل مجاز درگاه است.",
		CodeNetwork:            "ارتباط با سرور برقرار نشد. لطفاً دوباره تلاش کنید.",
		CodeVerifyFailed:       "تأیید پرداخت ناموفق بود (کد %d).",
		CodeCancelled:          "پرداخت لغو شد.",
		CodeNothingToVerify:    "پرداختی برای بررسی وجود ندارد.",
		CodeServer:             "خطایی رخ داد. لطفاً دوباره تلاش کنید.",
	},
}

func message(lang language.Tag, code Code, args ...any) string {
	table, ok := messages[lang]
	if !ok {
		table = messages[language.English]
	}
	msg := table[code]
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}
