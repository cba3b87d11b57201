// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command blqdemo exercises a shared blq queue with one consumer and a
// configurable number of producers.
//
// Usage:
//
//	blqdemo [producers]
//
// producers defaults to 5; a negative count is negated. The program runs
// until standard input is closed (^D), then stops every task and exits.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/blq"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const queueCapacity = 1000

// app is the state shared by the demo tasks. Each task receives it
// explicitly at spawn time; nothing lives at package scope.
type app struct {
	queue *blq.Queue[string]
	stop  atomix.Bool
	seq   atomix.Int64
	log   *zap.SugaredLogger
}

func main() {
	producers := 5
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "blqdemo: bad producer count %q\n", os.Args[1])
			os.Exit(2)
		}
		producers = n
	}
	if producers < 0 {
		producers = -producers
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "blqdemo: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	a := &app{
		queue: blq.New[string](queueCapacity),
		log:   logger.Sugar(),
	}

	a.log.Infof("test 1 consumer and %d producers", producers)

	var g errgroup.Group
	g.Go(a.consume)
	for i := range producers {
		g.Go(func() error { return a.produce(i) })
	}

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Println("Enter (for info or ^D for exit)")
		if !in.Scan() {
			break
		}
	}

	a.stop.Store(true)
	a.log.Info("waiting for all tasks")
	if err := g.Wait(); err != nil {
		a.log.Errorf("task failed: %v", err)
	}
}

// consume drains the queue until the stop flag is set and a poll comes
// back empty. Items still queued at stop time are consumed first.
func (a *app) consume() error {
	a.log.Info("consumer started")
	sw := spin.Wait{}
	for {
		var data string
		if a.queue.TryGet(&data) {
			a.log.Infof("consumer got data: %s", data)
			sw.Reset()
			continue
		}
		if a.stop.Load() {
			break
		}
		sw.Once()
	}
	a.log.Info("consumer stopped")
	return nil
}

// produce offers sequence-tagged strings until the stop flag is set.
// A full queue drops the attempt and backs off, like any producer facing
// backpressure without a retry obligation.
func (a *app) produce(id int) error {
	a.log.Infof("producer %d started", id)
	backoff := iox.Backoff{}
	for !a.stop.Load() {
		data := fmt.Sprintf("seq = %d from producer %d", a.seq.Add(1)-1, id)
		if a.queue.TryPut(data) {
			backoff.Reset()
			continue
		}
		backoff.Wait()
	}
	a.log.Infof("producer %d stopped", id)
	return nil
}
