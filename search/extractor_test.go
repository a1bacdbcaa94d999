package search

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveHref(t *testing.T) {
	base, _ := url.Parse("https://html.duckduckgo.com/html")

	tests := []struct {
		name string
		href string
		want string
	}{
		{"direct", "https://www.globex.com/", "https://www.globex.com/"},
		{"redirector", "//duckduckgo.com/l/?uddg=https%3A%2F%2Fglobex.com%2Fabout%3Fa%3D1%26b%3D2&rut=x", "https://globex.com/about?a=1&b=2"},
		{"redirector absolute", "https://duckduckgo.com/l/?uddg=https%3A%2F%2Fglobex.com", "https://globex.com"},
		{"empty uddg", "https://duckduckgo.com/l/?uddg=&rut=x", "https://duckduckgo.com/l/?uddg=&rut=x"},
		{"protocol relative", "//www.globex.com/", "https://www.globex.com/"},
		{"unparseable", "http://[::1", "http://[::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveHref(base, tt.href))
		})
	}
}

func TestIsLinkedInCompany(t *testing.T) {
	assert.True(t, IsLinkedInCompany("https://www.linkedin.com/company/initech"))
	assert.True(t, IsLinkedInCompany("https://uk.linkedin.com/company/initech/about"))
	assert.False(t, IsLinkedInCompany("https://www.linkedin.com/in/bill-lumbergh"))
	assert.False(t, IsLinkedInCompany("https://initech.com/company"))
}

func TestFirstLinkedInCompany(t *testing.T) {
	links := []string{
		"https://initech.com",
		"https://www.linkedin.com/in/peter",
		"https://www.linkedin.com/company/initech",
		"https://www.linkedin.com/company/initech-2",
	}

	got, ok := FirstLinkedInCompany(links)
	assert.True(t, ok)
	assert.Equal(t, "https://www.linkedin.com/company/initech", got)

	_, ok = FirstLinkedInCompany(links[:2])
	assert.False(t, ok)

	_, ok = FirstLinkedInCompany(nil)
	assert.False(t, ok)
}
