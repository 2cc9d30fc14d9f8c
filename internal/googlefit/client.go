package googlefit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/fitness/v1"
	"google.golang.org/api/option"
)

// Aggregate data types and sources, same ones the Google Fit app merges into.
const (
	dataTypeSteps       = "com.google.step_count.delta"
	dataSourceSteps     = "derived:com.google.step_count.delta:com.google.android.gms:estimated_steps"
	dataTypeDistance    = "com.google.distance.delta"
	dataSourceDistance  = "derived:com.google.distance.delta:com.google.android.gms:merge_distance_delta"
	dataTypeCalories    = "com.google.calories.expended"
	dataSourceCalories  = "derived:com.google.calories.expended:com.google.android.gms:merge_calories_expended"
	dataTypeActiveMin   = "com.google.active_minutes"
	dataSourceActiveMin = "derived:com.google.active_minutes:com.google.android.gms:merge_active_minutes"
	dayBucketMillis     = 24 * 60 * 60 * 1000
)

// Client wraps the Google OAuth flow and the fitness aggregate API.
type Client struct {
	oauthConfig *oauth2.Config
	httpClient  *http.Client
}

func NewClient(clientID, clientSecret, redirectURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     google.Endpoint,
			Scopes: []string{
				fitness.FitnessActivityReadScope,
				fitness.FitnessBodyReadScope,
				fitness.FitnessLocationReadScope,
			},
		},
	}
}

func (c *Client) Configured() bool {
	return c.oauthConfig.ClientID != "" && c.oauthConfig.ClientSecret != ""
}

// AuthCodeURL returns the offline-access consent URL. State carries the
// user id through the provider round trip.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return c.oauthConfig.Exchange(c.tracedContext(ctx), code)
}

// Refresh trades a refresh token for a fresh access token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	tokenSource := c.oauthConfig.TokenSource(c.tracedContext(ctx), &oauth2.Token{RefreshToken: refreshToken})
	return tokenSource.Token()
}

// tracedContext makes the oauth2 package use the instrumented http client.
func (c *Client) tracedContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

// Aggregate runs one day-bucketed aggregate query and returns the first
// point value, or nil when the bucket is empty.
func (c *Client) Aggregate(
	ctx context.Context,
	accessToken string,
	dataTypeName, dataSourceID string,
	start, end time.Time,
) (*fitness.Value, error) {
	authedClient := oauth2.NewClient(
		c.tracedContext(ctx),
		oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}),
	)
	fitnessService, err := fitness.NewService(ctx, option.WithHTTPClient(authedClient))
	if err != nil {
		return nil, fmt.Errorf("new fitness service: %w", err)
	}

	resp, err := fitnessService.Users.Dataset.Aggregate("me", &fitness.AggregateRequest{
		AggregateBy: []*fitness.AggregateBy{
			{
				DataTypeName: dataTypeName,
				DataSourceId: dataSourceID,
			},
		},
		BucketByTime:    &fitness.BucketByTime{DurationMillis: dayBucketMillis},
		StartTimeMillis: start.UnixMilli(),
		EndTimeMillis:   end.UnixMilli(),
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("aggregate %s: %w", dataTypeName, err)
	}

	if len(resp.Bucket) == 0 ||
		len(resp.Bucket[0].Dataset) == 0 ||
		len(resp.Bucket[0].Dataset[0].Point) == 0 ||
		len(resp.Bucket[0].Dataset[0].Point[0].Value) == 0 {
		return nil, nil
	}
	return resp.Bucket[0].Dataset[0].Point[0].Value[0], nil
}
