package publicip

type settings struct {
	providers []Provider
}

func newDefaultSettings() settings {
	return settings{
		providers: ListProviders(),
	}
}

type Option func(s *settings) error

// SetProviders sets the ordered list of providers to query.
func SetProviders(first Provider, providers ...Provider) Option {
	providers = append([]Provider{first}, providers...)
	return func(s *settings) (err error) {
		for _, provider := range providers {
			err = ValidateProvider(provider)
			if err != nil {
				return err
			}
		}
		s.providers = providers
		return nil
	}
}
