package console

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/Artexxx/HR-Console/internal/notify"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
	flashCookie     = "hr_flash"
)

type okResponse struct {
	Status string `json:"status" example:"ok"`
	Msg    string `json:"msg" example:"OK"`
}

func writeJSON(ctx *fasthttp.RequestCtx, statusCode int, body any) {
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.SetStatusCode(statusCode)

	_ = json.NewEncoder(ctx).Encode(body)
}

func ok(ctx *fasthttp.RequestCtx, msg string) {
	writeJSON(ctx, fasthttp.StatusOK, okResponse{Status: "ok", Msg: msg})
}

// redirect uses 303 so that a POST is followed by a GET.
func redirect(ctx *fasthttp.RequestCtx, to string, flash []notify.Message) {
	if len(flash) > 0 {
		setFlash(ctx, flash)
	}

	ctx.Redirect(to, fasthttp.StatusSeeOther)
}

func setFlash(ctx *fasthttp.RequestCtx, msgs []notify.Message) {
	raw, err := json.Marshal(msgs)
	if err != nil {
		return
	}

	c := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(c)

	c.SetKey(flashCookie)
	c.SetValue(base64.RawURLEncoding.EncodeToString(raw))
	c.SetPath("/")
	c.SetHTTPOnly(true)
	c.SetSameSite(fasthttp.CookieSameSiteLaxMode)
	c.SetMaxAge(60)

	ctx.Response.Header.SetCookie(c)
}

// takeFlash returns messages stored by the previous redirect and expires the cookie.
func takeFlash(ctx *fasthttp.RequestCtx) []notify.Message {
	raw := ctx.Request.Header.Cookie(flashCookie)
	if len(raw) == 0 {
		return nil
	}

	c := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(c)

	c.SetKey(flashCookie)
	c.SetPath("/")
	c.SetExpire(fasthttp.CookieExpireDelete)
	ctx.Response.Header.SetCookie(c)

	decoded, err := base64.RawURLEncoding.DecodeString(string(raw))
	if err != nil {
		return nil
	}

	var msgs []notify.Message
	if err := json.Unmarshal(decoded, &msgs); err != nil {
		return nil
	}

	return msgs
}

func parseOffset(ctx *fasthttp.RequestCtx, key string) int {
	i, err := strconv.Atoi(string(ctx.QueryArgs().Peek(key)))
	if err != nil || i < 0 {
		return 0
	}

	return i
}

func parseLimit(ctx *fasthttp.RequestCtx, key string, def int) int {
	i, err := strconv.Atoi(string(ctx.QueryArgs().Peek(key)))
	if err != nil || i <= 0 {
		return def
	}

	return min(i, maxPageSize)
}

func parseID(ctx *fasthttp.RequestCtx) (int64, bool) {
	raw, _ := ctx.UserValue("id").(string)

	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}

	return id, true
}

func postArg(ctx *fasthttp.RequestCtx, key string) string {
	return string(ctx.PostArgs().Peek(key))
}

func formatTime(s string) string {
	if s == "" {
		return "-"
	}

	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02 15:04:05")
		}
	}

	return s
}
