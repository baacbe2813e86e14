// Package storage exports computed results to DynamoDB. Table layout
// mirrors the dashboard's managed store: a LiveData table that gets
// fully refreshed per data type, and a WeeklyTimeSeries table that
// accumulates week-by-week history.
package storage

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/okian/dugout/internal/domain/h2h"
	"github.com/okian/dugout/internal/domain/model"
	"github.com/okian/dugout/pkg/metrics"
)

// DynamoDB limits batch writes to 25 items.
const batchSize = 25

// Live data type names. The legacy store accumulated differently-cased
// duplicates of these ("Power_Ranks" next to "power_ranks"); the
// exporter only ever writes the lower-case canonical names.
const (
	typePowerRanks = "power_ranks"
	typeLuck       = "weekly_luck_analysis"
	typeH2H        = "h2h_records"

	typePowerTrend = "power_ranks_season_trend"
	typeLuckTrend  = "running_luck"
	typeEloTrend   = "running_elo"
)

// Config holds configuration for the DynamoDB export target.
type Config struct {
	Region      string
	TablePrefix string
	// Endpoint overrides the AWS endpoint, for local DynamoDB.
	Endpoint string
}

// DynamoStore implements repository.Writer against DynamoDB.
type DynamoStore struct {
	client *dynamodb.Client
	prefix string
}

// NewDynamoStore creates a DynamoDB-backed export target.
func NewDynamoStore(ctx context.Context, cfg Config) (*DynamoStore, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	var ddbOpts []func(*dynamodb.Options)
	if cfg.Endpoint != "" {
		ddbOpts = append(ddbOpts, func(o *dynamodb.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}

	prefix := cfg.TablePrefix
	if prefix == "" {
		prefix = "FantasyBaseball"
	}
	return &DynamoStore{
		client: dynamodb.NewFromConfig(awsCfg, ddbOpts...),
		prefix: prefix,
	}, nil
}

func (s *DynamoStore) liveTable() string   { return s.prefix + "-LiveData" }
func (s *DynamoStore) weeklyTable() string { return s.prefix + "-WeeklyTimeSeries" }

// compositeItem is the wire shape for power rank rows.
type compositeItem struct {
	DataType       string  `dynamodbav:"DataType"`
	TeamNumber     string  `dynamodbav:"TeamNumber"`
	WeekTeam       string  `dynamodbav:"WeekTeam,omitempty"`
	Week           int     `dynamodbav:"Week"`
	ScoreSum       float64 `dynamodbav:"ScoreSum"`
	BattingSum     float64 `dynamodbav:"BattingSum"`
	PitchingSum    float64 `dynamodbav:"PitchingSum"`
	StatsPowerRank int     `dynamodbav:"StatsPowerRank"`
	LeagueRank     int     `dynamodbav:"LeagueRank"`
	ScoreVariation int     `dynamodbav:"ScoreVariation"`
}

// PutComposite refreshes the live power rank table and appends the week
// to the season trend series.
func (s *DynamoStore) PutComposite(ctx context.Context, week int, rows []model.CompositeScore) error {
	if err := s.clearLive(ctx, typePowerRanks); err != nil {
		return err
	}

	live := make([]any, 0, len(rows))
	trend := make([]any, 0, len(rows))
	for _, r := range rows {
		item := compositeItem{
			DataType:       typePowerRanks,
			TeamNumber:     fmt.Sprint(r.TeamNumber),
			Week:           week,
			ScoreSum:       r.TotalScoreSum,
			BattingSum:     r.BattingScoreSum,
			PitchingSum:    r.PitchingScoreSum,
			StatsPowerRank: r.StatsPowerRank,
			LeagueRank:     r.LeagueRank,
			ScoreVariation: r.ScoreVariation,
		}
		live = append(live, item)

		item.DataType = typePowerTrend
		item.WeekTeam = weekTeamKey(week, r.TeamNumber)
		trend = append(trend, item)
	}

	if err := s.putBatch(ctx, s.liveTable(), live); err != nil {
		return err
	}
	if err := s.putBatch(ctx, s.weeklyTable(), trend); err != nil {
		return err
	}
	metrics.RecordItemsExported(typePowerRanks, len(rows))
	return nil
}

// luckItem is the wire shape for luck rows.
type luckItem struct {
	DataType     string  `dynamodbav:"DataType"`
	TeamNumber   string  `dynamodbav:"TeamNumber"`
	WeekTeam     string  `dynamodbav:"WeekTeam,omitempty"`
	Week         int     `dynamodbav:"Week"`
	ExpectedWins float64 `dynamodbav:"ExpectedWins"`
	ActualWins   float64 `dynamodbav:"ActualWins"`
	Luck         float64 `dynamodbav:"Luck"`
}

// PutLuck refreshes the live luck table and appends to its series.
func (s *DynamoStore) PutLuck(ctx context.Context, week int, rows []model.LuckLine) error {
	if err := s.clearLive(ctx, typeLuck); err != nil {
		return err
	}

	live := make([]any, 0, len(rows))
	trend := make([]any, 0, len(rows))
	for _, r := range rows {
		item := luckItem{
			DataType:     typeLuck,
			TeamNumber:   fmt.Sprint(r.TeamNumber),
			Week:         week,
			ExpectedWins: r.ExpectedWins,
			ActualWins:   r.ActualWins,
			Luck:         r.Luck,
		}
		live = append(live, item)

		item.DataType = typeLuckTrend
		item.WeekTeam = weekTeamKey(week, r.TeamNumber)
		trend = append(trend, item)
	}

	if err := s.putBatch(ctx, s.liveTable(), live); err != nil {
		return err
	}
	if err := s.putBatch(ctx, s.weeklyTable(), trend); err != nil {
		return err
	}
	metrics.RecordItemsExported(typeLuck, len(rows))
	return nil
}

// eloItem is the wire shape for rating rows.
type eloItem struct {
	DataType   string  `dynamodbav:"DataType"`
	WeekTeam   string  `dynamodbav:"WeekTeam"`
	TeamNumber string  `dynamodbav:"TeamNumber"`
	Week       int     `dynamodbav:"Week"`
	Rating     float64 `dynamodbav:"Rating"`
	NewRating  float64 `dynamodbav:"NewRating"`
	Expected   float64 `dynamodbav:"Expected"`
	Actual     float64 `dynamodbav:"Actual"`
}

// PutElo replaces the season rating series.
func (s *DynamoStore) PutElo(ctx context.Context, rows []model.EloRating) error {
	items := make([]any, 0, len(rows))
	for _, r := range rows {
		items = append(items, eloItem{
			DataType:   typeEloTrend,
			WeekTeam:   weekTeamKey(r.Week, r.TeamNumber),
			TeamNumber: fmt.Sprint(r.TeamNumber),
			Week:       r.Week,
			Rating:     r.Rating,
			NewRating:  r.NewRating,
			Expected:   r.Expected,
			Actual:     r.Actual,
		})
	}
	if err := s.putBatch(ctx, s.weeklyTable(), items); err != nil {
		return err
	}
	metrics.RecordItemsExported(typeEloTrend, len(rows))
	return nil
}

// h2hItem is the wire shape for one directed cell of the H2H matrix.
type h2hItem struct {
	DataType   string `dynamodbav:"DataType"`
	TeamNumber string `dynamodbav:"TeamNumber"`
	Manager    string `dynamodbav:"Manager"`
	Opponent   string `dynamodbav:"Opponent"`
	Wins       int    `dynamodbav:"Wins"`
	Losses     int    `dynamodbav:"Losses"`
	Ties       int    `dynamodbav:"Ties"`
}

// PutH2H replaces the manager-vs-manager matrix.
func (s *DynamoStore) PutH2H(ctx context.Context, matrix map[string]map[string]h2h.Record) error {
	if err := s.clearLive(ctx, typeH2H); err != nil {
		return err
	}

	items := make([]any, 0, len(matrix)*len(matrix))
	for viewer, row := range matrix {
		for opponent, rec := range row {
			if viewer == opponent {
				continue
			}
			items = append(items, h2hItem{
				DataType:   typeH2H,
				TeamNumber: viewer + "#" + opponent,
				Manager:    viewer,
				Opponent:   opponent,
				Wins:       rec.Wins,
				Losses:     rec.Losses,
				Ties:       rec.Ties,
			})
		}
	}
	if err := s.putBatch(ctx, s.liveTable(), items); err != nil {
		return err
	}
	metrics.RecordItemsExported(typeH2H, len(items))
	return nil
}

// putBatch writes items in chunks of the DynamoDB batch limit. Chunks
// go out concurrently through the writer pool.
func (s *DynamoStore) putBatch(ctx context.Context, table string, items []any) error {
	var jobs []writeJob
	for start := 0; start < len(items); start += batchSize {
		end := start + batchSize
		if end > len(items) {
			end = len(items)
		}

		writes := make([]types.WriteRequest, 0, end-start)
		for _, item := range items[start:end] {
			av, err := attributevalue.MarshalMap(item)
			if err != nil {
				return fmt.Errorf("marshal item for %s: %w", table, err)
			}
			writes = append(writes, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: av},
			})
		}

		jobs = append(jobs, func(ctx context.Context) error {
			_, err := s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{table: writes},
			})
			if err != nil {
				return fmt.Errorf("batch write %s: %w", table, err)
			}
			return nil
		})
	}
	return runJobs(ctx, jobs)
}

// clearLive deletes every item for a data type so a refresh never
// leaves rows from a larger previous league behind.
func (s *DynamoStore) clearLive(ctx context.Context, dataType string) error {
	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.liveTable()),
			KeyConditionExpression: aws.String("DataType = :dt"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":dt": &types.AttributeValueMemberS{Value: dataType},
			},
			ProjectionExpression: aws.String("DataType, TeamNumber"),
			ExclusiveStartKey:    startKey,
		})
		if err != nil {
			return fmt.Errorf("query %s for clear: %w", dataType, err)
		}

		for start := 0; start < len(out.Items); start += batchSize {
			end := start + batchSize
			if end > len(out.Items) {
				end = len(out.Items)
			}
			writes := make([]types.WriteRequest, 0, end-start)
			for _, item := range out.Items[start:end] {
				writes = append(writes, types.WriteRequest{
					DeleteRequest: &types.DeleteRequest{Key: map[string]types.AttributeValue{
						"DataType":   item["DataType"],
						"TeamNumber": item["TeamNumber"],
					}},
				})
			}
			if len(writes) == 0 {
				continue
			}
			_, err := s.client.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{s.liveTable(): writes},
			})
			if err != nil {
				return fmt.Errorf("clear %s: %w", dataType, err)
			}
		}

		if out.LastEvaluatedKey == nil {
			return nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// weekTeamKey builds the WeeklyTimeSeries sort key. Weeks are zero
// padded so lexicographic order matches week order.
func weekTeamKey(week, team int) string {
	return fmt.Sprintf("%03d#%d", week, team)
}
