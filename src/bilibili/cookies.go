package bilibili

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Credential carries the login cookies of a Bilibili account. Endpoints that
// need a login context (manga search) read it; everything else works
// anonymously.
type Credential struct {
	Sessdata   string `json:"sessdata" yaml:"sessdata"`
	BiliJct    string `json:"bili_jct" yaml:"bili_jct"`
	Buvid3     string `json:"buvid3" yaml:"buvid3"`
	DedeUserID string `json:"dedeuserid" yaml:"dedeuserid"`
}

// IsEmpty reports whether c carries no cookie at all.
func (c *Credential) IsEmpty() bool {
	return c == nil || (c.Sessdata == "" && c.BiliJct == "" && c.Buvid3 == "" && c.DedeUserID == "")
}

// cookies returns the request cookies for c. buvid3 is always sent because
// anonymous search requests without it are rejected with -412.
func (c *Credential) cookies(fallbackBuvid3 string) []*http.Cookie {
	buvid3 := fallbackBuvid3
	if c != nil && c.Buvid3 != "" {
		buvid3 = c.Buvid3
	}
	out := []*http.Cookie{{Name: "buvid3", Value: buvid3}}
	if c == nil {
		return out
	}
	if c.Sessdata != "" {
		out = append(out, &http.Cookie{Name: "SESSDATA", Value: c.Sessdata})
	}
	if c.BiliJct != "" {
		out = append(out, &http.Cookie{Name: "bili_jct", Value: c.BiliJct})
	}
	if c.DedeUserID != "" {
		out = append(out, &http.Cookie{Name: "DedeUserID", Value: c.DedeUserID})
	}
	return out
}

// newBuvid3 generates a device id in the format the web player uses.
func newBuvid3() string {
	return strings.ToUpper(uuid.NewString()) + "infoc"
}
