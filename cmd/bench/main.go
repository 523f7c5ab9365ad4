package main

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/QuangTung97/donation-ledger/config"
	"github.com/QuangTung97/donation-ledger/model"
	"github.com/QuangTung97/donation-ledger/pkg/cacheclient"
	"github.com/QuangTung97/donation-ledger/pkg/memtable"
	"github.com/QuangTung97/donation-ledger/repository"
	"github.com/QuangTung97/donation-ledger/service/ledger"
	"github.com/QuangTung97/donation-ledger/service/progress"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"
)

func main() {
	rootCmd := cobra.Command{
		Use: "bench",
	}
	rootCmd.AddCommand(
		seedCommand(),
		benchProgressCommand(),
		benchRecordCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

type benchFlags struct {
	campaignID int64
	numThreads int
	numPerTh   int
}

func (f *benchFlags) register(cmd *cobra.Command, defaultThreads int, defaultPerThread int) {
	cmd.Flags().Int64Var(&f.campaignID, "campaign", 1000, "campaign id")
	cmd.Flags().IntVar(&f.numThreads, "threads", defaultThreads, "number of goroutines")
	cmd.Flags().IntVar(&f.numPerTh, "count", defaultPerThread, "number of calls per goroutine")
}

func printLatencies(durations [][]time.Duration) {
	history := make([]time.Duration, 0)

	total := time.Duration(0)
	for _, bucket := range durations {
		for _, d := range bucket {
			total += d
			history = append(history, d)
		}
	}
	numHistory := len(history)
	if numHistory == 0 {
		fmt.Println("NO SAMPLES")
		return
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i] < history[j]
	})

	fmt.Println("P50:", history[numHistory*50/100])
	fmt.Println("P90:", history[numHistory*90/100])
	fmt.Println("P95:", history[numHistory*95/100])
	fmt.Println("P99:", history[numHistory*99/100])
	fmt.Println("P999:", history[numHistory*999/1000])
	fmt.Println("MAX:", history[numHistory-1])
	fmt.Println("HISTORY LEN:", numHistory)
	fmt.Println("AVG:", total/time.Duration(numHistory))
}

func runConcurrently(flags benchFlags, fn func(threadIndex int, i int) error) [][]time.Duration {
	durations := make([][]time.Duration, flags.numThreads)

	totalStart := time.Now()

	var wg sync.WaitGroup
	wg.Add(flags.numThreads)
	for th := 0; th < flags.numThreads; th++ {
		threadIndex := th
		go func() {
			defer wg.Done()

			for i := 0; i < flags.numPerTh; i++ {
				start := time.Now()
				if err := fn(threadIndex, i); err != nil {
					fmt.Println("[ERROR]", err)
				}
				durations[threadIndex] = append(durations[threadIndex], time.Since(start))
			}
		}()
	}
	wg.Wait()
	fmt.Println("TOTAL TIME", time.Since(totalStart))

	return durations
}

func seedCommand() *cobra.Command {
	var campaignID int64
	var numItems int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "seed a campaign with items",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := config.Load()
			db := conf.MySQL.MustConnect(zap.NewNop())

			provider := repository.NewProvider(db)
			campaignRepo := repository.NewCampaign()
			itemRepo := repository.NewCampaignItem()

			return provider.Transact(context.Background(), func(ctx context.Context) error {
				err := campaignRepo.UpsertCampaign(ctx, model.Campaign{
					ID:        campaignID,
					NgoUserID: "bench-ngo",
					Title:     "Bench Campaign",
					NgoName:   "Bench NGO",
					Goal:      decimal.NewFromInt(1000000),
					Raised:    decimal.Zero,
				})
				if err != nil {
					return err
				}

				now := time.Now().UTC()
				for i := 0; i < numItems; i++ {
					id, err := itemRepo.InsertItem(ctx, model.CampaignItem{
						CampaignID:    campaignID,
						Name:          fmt.Sprintf("Bench Item %02d", i+1),
						TargetAmount:  decimal.NewFromInt(10000),
						CurrentAmount: decimal.Zero,
						UnitCost:      decimal.Zero,
						Priority:      model.ItemPriorityMedium,
						DisplayOrder:  int64(i),
						IsActive:      true,
						CreatedAt:     now,
						UpdatedAt:     now,
					})
					if err != nil {
						return err
					}
					fmt.Println("ITEM:", id)
				}
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&campaignID, "campaign", 1000, "campaign id")
	cmd.Flags().IntVar(&numItems, "items", 3, "number of items")
	return cmd
}

func benchProgress(flags benchFlags) {
	conf := config.Load()
	fmt.Println("MEMCACHE ENABLED:", conf.Memcache.Enabled())

	db := conf.MySQL.MustConnect(zap.NewNop())
	provider := repository.NewProvider(db)

	var remote cacheclient.CacheClient
	if conf.Memcache.Enabled() {
		fmt.Println("MEMCACHE ADDR:", conf.Memcache.Addr())
		remote = cacheclient.New(conf.Memcache.Addr(), conf.Memcache.Conns())
	}

	service := progress.NewService(
		provider, repository.NewCampaign(), repository.NewCampaignItem(),
		memtable.New(conf.Cache.LocalSizeBytes), remote,
		progress.WithLocalTTL(conf.Cache.LocalTTLSeconds),
		progress.WithRemoteTTL(conf.Cache.RemoteTTL),
	)

	durations := runConcurrently(flags, func(threadIndex int, i int) error {
		_, err := service.Get(context.Background(), flags.campaignID)
		return err
	})
	printLatencies(durations)
}

func benchProgressCommand() *cobra.Command {
	var flags benchFlags
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "benchmark reading campaign progress",
		Run: func(cmd *cobra.Command, args []string) {
			benchProgress(flags)
		},
	}
	flags.register(cmd, 50, 2000)
	return cmd
}

// benchRecord records synthetic donations concurrently against one campaign,
// then reconciles it, a correct ledger reports no drift
func benchRecord(flags benchFlags) {
	conf := config.Load()
	db := conf.MySQL.MustConnect(zap.NewNop())

	recorder := ledger.NewRecorder(
		repository.NewProvider(db),
		repository.NewCampaign(), repository.NewCampaignItem(), repository.NewDonation(),
	)

	durations := runConcurrently(flags, func(threadIndex int, i int) error {
		_, err := recorder.Record(context.Background(), ledger.CheckoutCompleted{
			SessionID:     "cs_bench_" + uuid.NewString(),
			AmountTotal:   1100,
			Currency:      "myr",
			CustomerEmail: fmt.Sprintf("donor-%d@bench.local", threadIndex),
			Metadata: model.DonationMetadata{
				CampaignID:    flags.campaignID,
				DonorID:       model.AnonymousDonorID,
				TipPercentage: decimal.NullDecimal{Decimal: decimal.NewFromInt(10), Valid: true},
				CampaignTitle: "Bench Campaign",
				NgoName:       "Bench NGO",
			},
		})
		return err
	})
	printLatencies(durations)

	result, err := recorder.Reconcile(context.Background(), flags.campaignID)
	if err != nil {
		panic(err)
	}
	fmt.Println("RAISED:", result.RaisedBefore, "=>", result.RaisedAfter)
	fmt.Println("DONORS:", result.DonorsBefore, "=>", result.DonorsAfter)
	fmt.Println("ITEMS CHANGED:", result.ItemsChanged)
}

func benchRecordCommand() *cobra.Command {
	var flags benchFlags
	cmd := &cobra.Command{
		Use:   "record",
		Short: "benchmark recording donations",
		Run: func(cmd *cobra.Command, args []string) {
			benchRecord(flags)
		},
	}
	flags.register(cmd, 20, 100)
	return cmd
}
