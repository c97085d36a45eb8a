package main

import (
	"github.com/tuannh982/go-collections/collections"

	log "github.com/sirupsen/logrus"
)

func main() {
	logger := log.WithFields(log.Fields{"demo": "collections"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Level = log.InfoLevel

	scores := collections.NewCollection[string, int]()
	scores.Put("alice", 3).Put("bob", 0).Put("carol", 7)
	logger.Infof("scores %v count %d", scores, scores.Count())

	passing := scores.Compact()
	logger.Infof("passing %v", passing)

	doubled := scores.Map(func(v int, _ string) int {
		return v * 2
	})
	doubled.Each(func(v int, k string) {
		logger.WithFields(log.Fields{"player": k}).Infof("doubled score %d", v)
	})

	queue := collections.NewCollectionFromSlice([]string{"A0", "B0", "C0"})
	queue.Add("D0")
	first, _ := queue.First()
	last, _ := queue.Last()
	logger.Infof("queue %v first %s last %s", queue, first, last)

	queue.Forget(0, 2)
	logger.Infof("queue after forget %v", queue)

	if _, err := scores.At("mallory"); err != nil {
		logger.WithError(err).Warn("direct index of absent key")
	}
}
