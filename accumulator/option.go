package accumulator

type Options struct {
	historyCapacity int
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{}
	for _, o := range option {
		o(opts)
	}

	if opts.historyCapacity <= 0 {
		opts.historyCapacity = DefaultHistoryCapacity
	}

	return opts
}

func HistoryCapacityOption(n int) Option {
	return func(o *Options) {
		o.historyCapacity = n
	}
}
