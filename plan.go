// Copyright 2024 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jumbo

import "fmt"

// AggregatePlanner partitions a target's eligible sources into a
// deterministic, ordered list of Aggregates.
//
// It keeps a per-type stack of open-aggregate indices and appends new
// sources to the current top, pushing a new aggregate when capacity is
// exhausted — the specification's documented equivalent to the original
// "most recently used cursor plus per-type counter" design. An aggregate
// that still has room when a different type's source arrives stays open and
// receives the next source of its own type; once an aggregate reaches
// capacity it is never reopened.
type AggregatePlanner struct {
	Target   *Target
	Resolver PathResolver
}

func (p *AggregatePlanner) resolver() PathResolver {
	if p.Resolver != nil {
		return p.Resolver
	}
	return DefaultPathResolver{}
}

// Plan runs the partitioning algorithm and writes the result into
// Target.JumboFiles. Callers must not call it more than once per target, per
// the data model's "populated exactly once" lifecycle rule.
func (p *AggregatePlanner) Plan() error {
	t := p.Target
	limit := t.JumboFileMergeLimit
	if limit <= 0 {
		limit = DefaultMergeLimit
	}

	// stacks[typ] holds indices into aggregates, most-recently-created
	// last; only the top can ever receive a new source of that type.
	stacks := make(map[SourceType][]int)
	counters := make(map[SourceType]int)

	var aggregates []Aggregate
	recentIndex := -1
	var recentType SourceType

	for _, src := range t.Sources {
		typ := src.Type()
		if !typ.eligibleForJumbo() || t.excludesSource(src) {
			continue
		}

		idx := -1
		if recentIndex >= 0 && recentType == typ && len(aggregates[recentIndex].Included) < limit {
			idx = recentIndex
		} else if counters[typ] > 0 {
			stack := stacks[typ]
			if len(stack) == 0 {
				// An aggregate of this type has been created (counters[typ] >
				// 0) but its stack entry is missing: the stack and counter
				// bookkeeping can only diverge if this function has a bug, not
				// from any input. Matches the original's NOTREACHED() in
				// FindJumboFile for the same condition.
				panic(fmt.Sprintf("jumbo: planner invariant violation: %d aggregates of type %s created but none tracked", counters[typ], typ))
			}
			idx = findOpenAggregate(stack, aggregates, limit)
		}

		if idx < 0 {
			agg, err := p.createAggregate(typ, counters)
			if err != nil {
				return err
			}
			aggregates = append(aggregates, agg)
			idx = len(aggregates) - 1
			stacks[typ] = append(stacks[typ], idx)
		}

		aggregates[idx].Included = append(aggregates[idx].Included, src)
		recentIndex, recentType = idx, typ
	}

	t.JumboFiles = aggregates
	return nil
}

// findOpenAggregate searches stack from most-recent to least-recent for an
// aggregate with spare capacity, matching the specification's "search
// existing aggregates from most-recent to least-recent" rule for the
// type-switch case. It returns -1 if none has room.
func findOpenAggregate(stack []int, aggregates []Aggregate, limit int) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if idx := stack[i]; len(aggregates[idx].Included) < limit {
			return idx
		}
	}
	return -1
}

func (p *AggregatePlanner) createAggregate(typ SourceType, counters map[SourceType]int) (Aggregate, error) {
	ext, ok := typ.jumboExtension()
	if !ok {
		// Unreachable from Plan: its eligibleForJumbo filter already
		// restricts typ to {C, CPP, MM}, all of which have an extension.
		return Aggregate{}, fmt.Errorf("jumbo: no aggregate extension for type %s", typ)
	}

	number := counters[typ]
	counters[typ] = number + 1

	filename := fmt.Sprintf("%s_jumbo_%s_%d.%s", p.Target.Name, ext, number, ext)
	output, err := p.resolver().ResolveGenerated(p.Target.GeneratedDir, filename)
	if err != nil {
		return Aggregate{}, err
	}

	return Aggregate{
		Output:   output,
		Included: make([]SourceFile, 0, capacityHint(p.Target.JumboFileMergeLimit)),
	}, nil
}

// capacityHint keeps the slice pre-allocation sane even if a caller somehow
// bypassed ConfigurationIngestor's ValueOutOfRange check, mirroring the
// original implementation's jumbo_file->second.reserve(merge_limit) call.
func capacityHint(limit int) int {
	if limit <= 0 {
		return DefaultMergeLimit
	}
	return limit
}
