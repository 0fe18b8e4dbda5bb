// Package doh provides a dnsclient.Client implementation speaking
// DNS-over-HTTPS, either the JSON API offered by public resolvers
// (application/dns-json) or the RFC 8484 wire format (application/dns-message).
package doh

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"enricher/pkg/dnsclient"
	"enricher/pkg/metrics"
	"enricher/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/miekg/dns"
	"golang.org/x/time/rate"
)

// Format selects the DoH encoding.
type Format string

const (
	// FormatJSON uses GET ?name=&type= with accept: application/dns-json.
	FormatJSON Format = "json"
	// FormatWire uses GET ?dns=<base64url> with accept: application/dns-message.
	FormatWire Format = "wire"
)

const (
	// DefaultEndpoint is the Cloudflare DoH endpoint.
	DefaultEndpoint = "https://cloudflare-dns.com/dns-query"
	// DefaultTimeout bounds a single query.
	DefaultTimeout = 5 * time.Second

	maxResponseSize = 64 << 10
)

// Options configure the DoH client.
type Options struct {
	// Endpoint is the absolute URL of the DoH service.
	Endpoint string
	// Format is the request encoding. Defaults to FormatJSON.
	Format Format
	// Timeout bounds a single query including reading the response.
	Timeout time.Duration
	// RequestsPerSecond limits the rate of outgoing queries. Zero disables the limit.
	RequestsPerSecond float64
	// Burst is the number of queries allowed to exceed RequestsPerSecond momentarily.
	Burst int
}

// Client queries a DoH endpoint. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	endpoint   *url.URL
	format     Format
	timeout    time.Duration
	limiter    *rate.Limiter
}

var _ dnsclient.Client = (*Client)(nil)

// New constructs a Client sending requests with httpClient.
func New(httpClient *http.Client, options Options) (*Client, error) {
	if options.Endpoint == "" {
		options.Endpoint = DefaultEndpoint
	}
	if options.Format == "" {
		options.Format = FormatJSON
	}
	if options.Timeout <= 0 {
		options.Timeout = DefaultTimeout
	}
	if options.Format != FormatJSON && options.Format != FormatWire {
		return nil, errors.Errorf("unknown doh format %q", options.Format)
	}

	endpoint, err := url.Parse(options.Endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "parse doh endpoint")
	}
	if endpoint.Scheme != "http" && endpoint.Scheme != "https" {
		return nil, errors.Errorf("doh endpoint %q must be an http(s) URL", options.Endpoint)
	}

	c := &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
		format:     options.Format,
		timeout:    options.Timeout,
	}
	if options.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(options.RequestsPerSecond), max(options.Burst, 1))
	}

	return c, nil
}

// Query implements dnsclient.Client.
func (c *Client) Query(ctx context.Context, name string, qtype uint16) (answers []dnsclient.Answer, err error) {
	typeName := dns.TypeToString[qtype]
	if typeName == "" {
		typeName = strconv.Itoa(int(qtype))
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(err, "wait for rate limiter")
		}
	}

	start := time.Now()
	defer func() {
		metrics.DNSQueryDuration.WithLabelValues(typeName).Observe(time.Since(start).Seconds())
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		metrics.DNSQueries.WithLabelValues(typeName, outcome).Inc()
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if c.format == FormatWire {
		return c.queryWire(ctx, name, qtype, typeName)
	}

	return c.queryJSON(ctx, name, typeName)
}

func (c *Client) queryJSON(ctx context.Context, name, typeName string) ([]dnsclient.Answer, error) {
	u := *c.endpoint
	q := u.Query()
	q.Set("name", name)
	q.Set("type", typeName)
	u.RawQuery = q.Encode()

	body, err := c.get(ctx, u.String(), "application/dns-json", typeName, name)
	if err != nil {
		return nil, err
	}

	answers, err := DecodeJSON(body)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s answer for %q", typeName, name)
	}

	return answers, nil
}

func (c *Client) queryWire(ctx context.Context, name string, qtype uint16, typeName string) ([]dnsclient.Answer, error) {
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), qtype)
	msg.RecursionDesired = true
	// RFC 8484 recommends id 0 for cache friendliness
	msg.Id = 0

	packed, err := msg.Pack()
	if err != nil {
		return nil, errors.Wrapf(err, "pack %s query for %q", typeName, name)
	}

	u := *c.endpoint
	q := u.Query()
	q.Set("dns", base64.RawURLEncoding.EncodeToString(packed))
	u.RawQuery = q.Encode()

	body, err := c.get(ctx, u.String(), "application/dns-message", typeName, name)
	if err != nil {
		return nil, err
	}

	answers, err := DecodeWire(body)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s answer for %q", typeName, name)
	}

	return answers, nil
}

func (c *Client) get(ctx context.Context, target, accept, typeName, name string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", accept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "send %s query for %q", typeName, name)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if len(body) > maxResponseSize {
			body = body[:maxResponseSize]
		}

		return nil, serrors.With(serrors.ErrUnavailable,
			"doh %s query for %q failed: %d %s", typeName, name, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	if len(body) > maxResponseSize {
		return nil, serrors.With(serrors.ErrUnavailable,
			"doh %s response for %q exceeds %d bytes", typeName, name, maxResponseSize)
	}

	return body, nil
}

// DecodeJSON parses a DoH JSON response. A missing or null Answer field yields
// no answers.
func DecodeJSON(body []byte) ([]dnsclient.Answer, error) {
	answers := []dnsclient.Answer{}
	d := jx.DecodeBytes(body)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		if key != "Answer" {
			return d.Skip()
		}
		if d.Next() == jx.Null {
			return d.Null()
		}

		return d.Arr(func(d *jx.Decoder) error {
			answer, err := decodeAnswer(d)
			if err != nil {
				return err
			}
			answers = append(answers, answer)

			return nil
		})
	}); err != nil {
		return nil, err
	}

	return answers, nil
}

func decodeAnswer(d *jx.Decoder) (dnsclient.Answer, error) {
	var a dnsclient.Answer
	err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "name":
			a.Name, err = d.Str()
		case "type":
			a.Type, err = d.UInt16()
		case "TTL":
			a.TTL, err = d.UInt32()
		case "data":
			a.Data, err = d.Str()
		default:
			err = d.Skip()
		}

		return err
	})

	return a, err
}

// DecodeWire parses an RFC 1035 wire format response.
func DecodeWire(body []byte) ([]dnsclient.Answer, error) {
	msg := new(dns.Msg)
	if err := msg.Unpack(body); err != nil {
		return nil, err
	}

	answers := make([]dnsclient.Answer, 0, len(msg.Answer))
	for _, rr := range msg.Answer {
		hdr := rr.Header()
		answers = append(answers, dnsclient.Answer{
			Name: hdr.Name,
			Type: hdr.Rrtype,
			TTL:  hdr.Ttl,
			Data: rdata(rr),
		})
	}

	return answers, nil
}

// rdata renders the record data the way DoH JSON resolvers do.
func rdata(rr dns.RR) string {
	switch v := rr.(type) {
	case *dns.MX:
		return strconv.Itoa(int(v.Preference)) + " " + v.Mx
	case *dns.TXT:
		return strings.Join(v.Txt, "")
	default:
		return strings.TrimSpace(strings.TrimPrefix(rr.String(), rr.Header().String()))
	}
}
