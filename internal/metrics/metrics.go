// Package metrics exposes Prometheus counters for game activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	LabelZone    = "zone"
	LabelEnemy   = "enemy"
	LabelOutcome = "outcome"
	LabelOp      = "op"
)

// Encounter metrics
var (
	EncountersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fieldquest_encounters_total",
			Help: "Enemy encounters triggered, by zone and enemy.",
		},
		[]string{LabelZone, LabelEnemy},
	)

	StepsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fieldquest_steps_total",
			Help: "Player steps taken on the field.",
		},
	)
)

// Battle metrics
var (
	BattleActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fieldquest_battle_actions_total",
			Help: "Resolved battle actions, by enemy and outcome.",
		},
		[]string{LabelEnemy, LabelOutcome},
	)

	LevelUpsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fieldquest_level_ups_total",
			Help: "Player level ups.",
		},
	)

	DeathsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fieldquest_deaths_total",
			Help: "Player deaths.",
		},
	)
)

// Persistence metrics
var (
	StoreFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fieldquest_store_failures_total",
			Help: "Failed persistence operations, by operation.",
		},
		[]string{LabelOp},
	)
)
