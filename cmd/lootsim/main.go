// Command lootsim rolls a loot template many times offline and prints how
// often each item dropped, followed by the encoded loot window of one more
// roll as seen by a simulated player.
//
// Usage:
//
//	go run ./cmd/lootsim -entry 1 -n 10000 -seed 42
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"text/tabwriter"

	"github.com/udisondev/lootcore/internal/condition"
	"github.com/udisondev/lootcore/internal/config"
	"github.com/udisondev/lootcore/internal/data"
	"github.com/udisondev/lootcore/internal/game/looting"
	"github.com/udisondev/lootcore/internal/gameserver/serverpackets"
	"github.com/udisondev/lootcore/internal/loot"
	"github.com/udisondev/lootcore/internal/model"
	"github.com/udisondev/lootcore/internal/world"
)

type options struct {
	content  string
	rows     string
	store    string
	entry    int32
	n        int
	seed     uint64
	minGold  uint32
	maxGold  uint32
	logLevel string
	quest    int // quest item the simulated player still needs, 0 = none
}

func main() {
	var o options
	var entry, minGold, maxGold uint
	flag.StringVar(&o.content, "content", "config/content.yaml", "content pack YAML")
	flag.StringVar(&o.rows, "rows", "config/loot.yaml", "loot rows YAML")
	flag.StringVar(&o.store, "store", loot.StoreCreature, "loot table")
	flag.UintVar(&entry, "entry", 1, "loot template id")
	flag.IntVar(&o.n, "n", 10000, "number of fills")
	flag.Uint64Var(&o.seed, "seed", 1, "random seed")
	flag.UintVar(&minGold, "gold-min", 0, "minimum gold")
	flag.UintVar(&maxGold, "gold-max", 0, "maximum gold (0 = no gold)")
	flag.StringVar(&o.logLevel, "log-level", "warn", "debug|info|warn|error")
	flag.IntVar(&o.quest, "quest-item", 0, "quest item the simulated player needs")
	flag.Parse()
	o.entry = int32(entry)
	o.minGold = uint32(minGold)
	o.maxGold = uint32(maxGold)

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: config.ParseLogLevel(o.logLevel),
	})))

	if err := run(o, os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// drop aggregates one item over all fills.
type drop struct {
	fills int // fills the item appeared in
	total int64
}

func run(o options, out io.Writer) error {
	if o.n <= 0 {
		return fmt.Errorf("-n must be positive, got %d", o.n)
	}

	content, err := data.LoadContent(o.content)
	if err != nil {
		return err
	}
	rowsByStore, err := data.LoadLootRows(o.rows)
	if err != nil {
		return err
	}

	tables := loot.NewTables(condition.NewRegistry(content, 0), content, loot.DefaultRates(), loot.NewSeededRNG(o.seed))
	tables.LoadAll(rowsByStore)
	store := tables.Store(o.store)
	if store == nil {
		return fmt.Errorf("unknown loot table %q", o.store)
	}
	if _, ok := store.Template(o.entry); !ok {
		return fmt.Errorf("%w: id %d in %s", loot.ErrContentNotFound, o.entry, o.store)
	}

	w := world.New()
	player, err := model.NewPlayer(w.IDs().NextPlayerID(), "Simulant", 469)
	if err != nil {
		return err
	}
	if o.quest != 0 {
		player.AcceptQuest(1, model.QuestObjective{ItemID: int32(o.quest), Required: 1})
	}
	if err := w.AddPlayer(player); err != nil {
		return err
	}
	mgr := looting.NewManager(tables, w, discardSender{})

	src := looting.Source{
		ObjectID: w.IDs().NextCreatureID(),
		Store:    o.store,
		LootID:   o.entry,
		MinGold:  o.minGold,
		MaxGold:  o.maxGold,
	}

	drops := make(map[int32]*drop)
	var gold uint64
	for range o.n {
		l, err := mgr.Fill(src, player)
		if err != nil {
			return err
		}
		gold += uint64(l.Gold())

		seen := make(map[int32]bool)
		for _, it := range append(l.Items(), l.QuestItems()...) {
			d := drops[it.ItemID]
			if d == nil {
				d = &drop{}
				drops[it.ItemID] = d
			}
			d.total += int64(it.Count)
			if !seen[it.ItemID] {
				d.fills++
				seen[it.ItemID] = true
			}
		}
		mgr.Despawn(src.ObjectID)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "item\tname\tdrop %%\tavg count\t\n")
	for _, id := range slices.Sorted(maps.Keys(drops)) {
		d := drops[id]
		name := "?"
		if def := content.Item(id); def != nil {
			name = def.Name
		}
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%.2f\t\n", id, name,
			100*float64(d.fills)/float64(o.n), float64(d.total)/float64(d.fills))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "fills: %d, avg gold: %.1f\n", o.n, float64(gold)/float64(o.n))

	if _, err := mgr.Fill(src, player); err != nil {
		return err
	}
	raw, err := mgr.Open(player.ObjectID(), src.ObjectID)
	if err != nil {
		return err
	}
	resp, err := serverpackets.ParseLootResponse(raw)
	if err != nil {
		return err
	}
	g, rows, err := serverpackets.ParseLootSnapshot(resp.Snapshot)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "sample window: gold %d, %d rows\n", g, len(rows))
	for _, r := range rows {
		fmt.Fprintf(out, "  slot %d: item %d x%d (display %d, property %d, type %d)\n",
			r.Slot, r.ItemID, r.Count, r.DisplayInfoID, r.RandomPropertyID, r.Type)
	}
	fmt.Fprintf(out, "packet: %s\n", hex.EncodeToString(raw))
	return nil
}

// discardSender drops notifications: nobody is connected in a simulation.
type discardSender struct{}

func (discardSender) SendPacket(uint32, []byte) error { return nil }
