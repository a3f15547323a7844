package keeper

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	poolsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "paw_prizepool_pools_created_total",
			Help: "Total number of prize pools initialized",
		},
	)

	depositCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paw_prizepool_deposits_total",
			Help: "Total number of deposits",
		},
		[]string{"pool_id"},
	)

	withdrawCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paw_prizepool_withdrawals_total",
			Help: "Total number of principal withdrawals",
		},
		[]string{"pool_id"},
	)

	drawCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paw_prizepool_draws_total",
			Help: "Total number of successful prize draws",
		},
		[]string{"pool_id"},
	)

	prizePaidTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paw_prizepool_prize_paid_base_units",
			Help: "Cumulative prize paid out in base units",
		},
		[]string{"pool_id"},
	)

	harvestedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "paw_prizepool_yield_harvested_base_units",
			Help: "Cumulative yield harvested into prize funds in base units",
		},
		[]string{"pool_id"},
	)

	suppliedGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "paw_prizepool_supplied_to_lender_base_units",
			Help: "Principal currently supplied to the lender per pool",
		},
		[]string{"pool_id"},
	)
)
